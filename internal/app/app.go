package app

import (
	"log/slog"

	"biodata-api/config"
	"biodata-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil when revocation is disabled
	Validator   *validator.Validate
	Logger      *slog.Logger

	AuthService    services.AuthService
	BiodataService services.BiodataService
}
