package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"biodata-api/config"
	"biodata-api/internal/database"
	"biodata-api/internal/services"
	"biodata-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
)

// New connects the backing stores, applies migrations and wires the services.
// The returned close function releases every connection that was opened.
func New(ctx context.Context, cfg *config.Config, logOut io.Writer) (*Application, func(), error) {
	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	var revoked services.RevocationStore
	if redisClient != nil {
		revoked = services.NewRedisRevocationStore(redisClient)
	} else {
		log.Println("Redis address not configured, logout will not revoke tokens.")
	}

	userRepo := postgres.NewUserRepo(dbPool)
	biodataRepo := postgres.NewBiodataRepo(dbPool)

	application := &Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validator.New(),
		Logger:      cfg.Log.NewLogger(logOut),

		AuthService:    services.NewAuthService(userRepo, revoked, cfg.JWT.Secret, cfg.JWT.Expiration),
		BiodataService: services.NewBiodataService(dbPool, biodataRepo),
	}

	closeFn := func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}
		dbPool.Close()
	}

	return application, closeFn, nil
}
