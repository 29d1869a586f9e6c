package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"biodata-api/internal/models"
	"biodata-api/internal/services"
	"biodata-api/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newRevocationStore(t *testing.T) (services.RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return services.NewRedisRevocationStore(client), mr
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success issues a user token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		repo.On("Create", mock.Anything, "a@x.com", mock.AnythingOfType("string"), models.RoleUser).
			Return(&models.User{ID: 7, Email: "a@x.com", Role: models.RoleUser}, nil).Once()

		user, token, err := svc.Register(ctx, "a@x.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)
		assert.Equal(t, models.RoleUser, claims.Role)
		assert.NotEmpty(t, claims.ID)
		assert.WithinDuration(t, time.Now().Add(jwtDuration), claims.ExpiresAt.Time, 5*time.Second)

		hash := repo.Calls[0].Arguments.String(2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		repo.On("Create", mock.Anything, "a@x.com", mock.Anything, models.RoleUser).
			Return(nil, storage.ErrDuplicateEmail).Once()

		_, _, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	})

	t.Run("Duplicate email differing only in case", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		repo.On("Create", mock.Anything, "ana@x.com", mock.Anything, models.RoleUser).
			Return(nil, storage.ErrDuplicateEmail).Once()

		_, _, err := svc.Register(ctx, " Ana@X.COM ", "secret1")
		assert.ErrorIs(t, err, services.ErrDuplicateEmail)
		repo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)
		dbErr := errors.New("database connection lost")

		repo.On("Create", mock.Anything, "a@x.com", mock.Anything, models.RoleUser).Return(nil, dbErr).Once()

		_, _, err := svc.Register(ctx, "a@x.com", "secret1")
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "internal error creating user")
	})

	t.Run("Missing password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		_, _, err := svc.Register(ctx, "a@x.com", "")
		assert.ErrorIs(t, err, services.ErrValidation)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &models.User{ID: 3, Email: "admin@admin.com", Role: models.RoleAdmin, PasswordHash: hashPassword(t, "admin123")}

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(repo *MockUserRepository)
		expectedErr error
	}{
		{
			name:     "Success carries stored role",
			email:    "admin@admin.com",
			password: "admin123",
			setup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "admin@admin.com").Return(stored, nil).Once()
			},
		},
		{
			name:     "Email matches regardless of case",
			email:    "Admin@Admin.COM",
			password: "admin123",
			setup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "admin@admin.com").Return(stored, nil).Once()
			},
		},
		{
			name:     "Wrong password",
			email:    "admin@admin.com",
			password: "wrong",
			setup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "admin@admin.com").Return(stored, nil).Once()
			},
			expectedErr: services.ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@x.com",
			password: "whatever",
			setup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, storage.ErrNotFound).Once()
			},
			expectedErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)
			tt.setup(repo)

			user, token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := svc.Verify(ctx, token)
			require.NoError(t, err)
			assert.True(t, claims.IsAdmin())
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "u@x.com").
		Return(&models.User{ID: 1, Email: "u@x.com", Role: models.RoleUser, PasswordHash: hashPassword(t, "secret1")}, nil)

	svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)
	_, token, err := svc.Login(ctx, "u@x.com", "secret1")
	require.NoError(t, err)

	t.Run("Missing token", func(t *testing.T) {
		_, err := svc.Verify(ctx, "")
		assert.ErrorIs(t, err, services.ErrMissingToken)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Stripped signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		_, err := svc.Verify(ctx, parts[0]+"."+parts[1]+".")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Different secret", func(t *testing.T) {
		other := services.NewAuthService(repo, nil, "another-secret", jwtDuration)
		_, err := other.Verify(ctx, token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := services.NewAuthService(repo, nil, jwtSecret, -time.Minute)
		_, stale, err := expired.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)

		_, err = svc.Verify(ctx, stale)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "u@x.com").
		Return(&models.User{ID: 1, Email: "u@x.com", Role: models.RoleUser, PasswordHash: hashPassword(t, "secret1")}, nil)

	t.Run("Revoked token is rejected", func(t *testing.T) {
		store, mr := newRevocationStore(t)
		svc := services.NewAuthService(repo, store, jwtSecret, jwtDuration)

		_, token, err := svc.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)
		claims, err := svc.Verify(ctx, token)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, claims))

		ttl := mr.TTL("revoked:" + claims.ID)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, jwtDuration)

		_, err = svc.Verify(ctx, token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Other tokens stay valid", func(t *testing.T) {
		store, _ := newRevocationStore(t)
		svc := services.NewAuthService(repo, store, jwtSecret, jwtDuration)

		_, first, err := svc.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)
		_, second, err := svc.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)

		claims, err := svc.Verify(ctx, first)
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, claims))

		_, err = svc.Verify(ctx, second)
		assert.NoError(t, err)
	})

	t.Run("Stateless without store", func(t *testing.T) {
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		_, token, err := svc.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)
		claims, err := svc.Verify(ctx, token)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, claims))
		_, err = svc.Verify(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("Redis unavailable", func(t *testing.T) {
		store, mr := newRevocationStore(t)
		svc := services.NewAuthService(repo, store, jwtSecret, jwtDuration)

		_, token, err := svc.Login(ctx, "u@x.com", "secret1")
		require.NoError(t, err)
		mr.Close()

		_, err = svc.Verify(ctx, token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrInvalidToken)
	})
}

func TestAuthService_SetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Promote", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		repo.On("GetByEmail", mock.Anything, "u@x.com").Return(&models.User{ID: 4, Email: "u@x.com", Role: models.RoleUser}, nil).Once()
		repo.On("UpdateRole", mock.Anything, int64(4), models.RoleAdmin).Return(&models.User{ID: 4, Email: "u@x.com", Role: models.RoleAdmin}, nil).Once()

		user, err := svc.SetRole(ctx, "u@x.com", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		repo.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, storage.ErrNotFound).Once()

		_, err := svc.SetRole(ctx, "ghost@x.com", models.RoleAdmin)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Invalid role", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewAuthService(repo, nil, jwtSecret, jwtDuration)

		_, err := svc.SetRole(ctx, "u@x.com", models.Role("root"))
		assert.ErrorIs(t, err, services.ErrValidation)
		repo.AssertNotCalled(t, "GetByEmail")
	})
}
