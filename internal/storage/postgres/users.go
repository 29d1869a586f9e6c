package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"biodata-api/internal/models"
	"biodata-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password, role, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user with an already hashed password.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string, role models.Role) (*models.User, error) {
	query := `
		INSERT INTO users (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, email, passwordHash, role))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s", email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v", email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %d", user.ID)
	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateRole changes a user's role. Tokens issued before the change keep the old role until they expire.
func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) (*models.User, error) {
	query := `UPDATE users SET role = $2 WHERE id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return nil, fmt.Errorf("invalid role %q: %w", role, storage.ErrConflict)
		}
		log.Printf("Error updating role of user %d: %v", id, err)
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return user, nil
}
