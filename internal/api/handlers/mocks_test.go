package handlers_test

import (
	"context"
	"time"

	"biodata-api/internal/models"
	"biodata-api/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	userClaims = &services.Claims{
		UserID: 7, Email: "a@x.com", Role: models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-user", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	adminClaims = &services.Claims{
		UserID: 1, Email: "admin@admin.com", Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-admin", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
)

// MockAuthService is a mock implementation of services.AuthService. Verify
// is answered from a fixed token table instead of expectations.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*services.Claims, error) {
	switch token {
	case "":
		return nil, services.ErrMissingToken
	case userToken:
		return userClaims, nil
	case adminToken:
		return adminClaims, nil
	default:
		return nil, services.ErrInvalidToken
	}
}

func (m *MockAuthService) Logout(ctx context.Context, claims *services.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthService) CreateUser(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) SetRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ services.AuthService = (*MockAuthService)(nil)

// MockBiodataService is a mock implementation of services.BiodataService.
type MockBiodataService struct {
	mock.Mock
}

func (m *MockBiodataService) Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error) {
	args := m.Called(ctx, ownerID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBiodataService) ListForOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Biodata), args.Error(1)
}

func (m *MockBiodataService) ListAll(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Biodata), args.Error(1)
}

func (m *MockBiodataService) Get(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Biodata), args.Error(1)
}

func (m *MockBiodataService) Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error {
	args := m.Called(ctx, id, ownerID, in)
	return args.Error(0)
}

func (m *MockBiodataService) Delete(ctx context.Context, id int64, ownerID *int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

var _ services.BiodataService = (*MockBiodataService)(nil)
