package services

import (
	"context"

	"biodata-api/internal/models"
)

// AuthService defines the interface for account and token logic.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(ctx context.Context, token string) (*Claims, error)
	Logout(ctx context.Context, claims *Claims) error
	CreateUser(ctx context.Context, email, password string, role models.Role) (*models.User, error)
	SetRole(ctx context.Context, email string, role models.Role) (*models.User, error)
}

// BiodataService defines the interface for biodata business logic.
// A nil ownerID grants admin access across all owners.
type BiodataService interface {
	Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error)
	ListAll(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error)
	Get(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error)
	Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error
	Delete(ctx context.Context, id int64, ownerID *int64) error
}
