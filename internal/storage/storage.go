package storage

import (
	"context"

	"biodata-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role models.Role) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRole(ctx context.Context, id int64, role models.Role) (*models.User, error)
}

// BiodataRepository defines the interface for biodata data operations.
// A nil ownerID means the call is not scoped to an owner (admin access).
type BiodataRepository interface {
	WithTx(tx pgx.Tx) BiodataRepository
	Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error)
	List(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error)
	GetByID(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error)
	Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error
	Delete(ctx context.Context, id int64, ownerID *int64) error
}
