package services_test

import (
	"context"

	"biodata-api/internal/models"
	"biodata-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, passwordHash string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockBiodataRepository is a mock type for the storage.BiodataRepository interface.
// WithTx returns the same mock so expectations hold inside transactions.
type MockBiodataRepository struct {
	mock.Mock
	boundTx pgx.Tx
}

func (m *MockBiodataRepository) WithTx(tx pgx.Tx) storage.BiodataRepository {
	m.boundTx = tx
	return m
}

func (m *MockBiodataRepository) Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error) {
	args := m.Called(ctx, ownerID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBiodataRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Biodata), args.Error(1)
}

func (m *MockBiodataRepository) List(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Biodata), args.Error(1)
}

func (m *MockBiodataRepository) GetByID(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Biodata), args.Error(1)
}

func (m *MockBiodataRepository) Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error {
	args := m.Called(ctx, id, ownerID, in)
	return args.Error(0)
}

func (m *MockBiodataRepository) Delete(ctx context.Context, id int64, ownerID *int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

var _ storage.BiodataRepository = (*MockBiodataRepository)(nil)

// fakeTx records how a transaction ended. Other pgx.Tx methods are not used
// by the services and would panic.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (f *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}
