package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"biodata-api/internal/models"
	"biodata-api/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	repo          storage.UserRepository
	revoked       RevocationStore
	jwtSecret     []byte
	jwtExpiration time.Duration
	now           func() time.Time
}

// NewAuthService creates a new instance of AuthService. A nil revocation
// store makes tokens valid until they expire, and Logout a no-op.
func NewAuthService(repo storage.UserRepository, revoked RevocationStore, jwtSecret string, jwtExpiration time.Duration) AuthService {
	return &authService{
		repo:          repo,
		revoked:       revoked,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		now:           time.Now,
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.CreateUser(ctx, email, password, models.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CreateUser stores a new account with a bcrypt hash of password.
func (s *authService) CreateUser(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("AuthService: Error hashing password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, email, string(hash), role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		log.Printf("AuthService: Error creating user %s: %v", email, err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature, algorithm and expiry, then the revocation list.
func (s *authService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == 0 || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Printf("AuthService: Error checking revocation for token %s: %v", claims.ID, err)
			return nil, fmt.Errorf("internal error verifying token: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token has been revoked", ErrInvalidToken)
		}
	}
	return claims, nil
}

// Logout revokes the token behind claims for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return ErrMissingToken
	}
	if s.revoked == nil || claims.ID == "" {
		return nil
	}

	ttl := s.jwtExpiration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		log.Printf("AuthService: Error revoking token for user %d: %v", claims.UserID, err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

// SetRole changes the role of the account with the given email. Tokens
// issued before the change keep the old role until they expire.
func (s *authService) SetRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, MapRepoError(err, "looking up user")
	}
	updated, err := s.repo.UpdateRole(ctx, user.ID, role)
	if err != nil {
		return nil, MapRepoError(err, "updating user role")
	}
	return updated, nil
}

// normalizeEmail folds case so that addresses differing only in case name the
// same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
