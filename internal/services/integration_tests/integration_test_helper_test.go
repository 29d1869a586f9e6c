//go:build integration

package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"biodata-api/internal/database"
	"biodata-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

// Helper to create a pointer to an int
func ptrInt(i int) *int { return &i }

func sampleBiodata(nama string) *models.BiodataInput {
	return &models.BiodataInput{
		Profile: models.Profile{
			Nama:                  nama,
			Posisi:                "Backend Engineer",
			JenisKelamin:          models.GenderMale,
			PenghasilanDiharapkan: ptrFloat64(9000000),
		},
		Education: []models.Education{
			{JenjangPendidikan: "S1", NamaInstitusi: "ITB", TahunLulus: ptrInt(2019), IPK: ptrFloat64(3.4)},
		},
		Training: []models.Training{
			{NamaKursus: "Docker", Sertifikat: true, Tahun: ptrInt(2022)},
			{NamaKursus: "Docker", Sertifikat: true, Tahun: ptrInt(2022)},
		},
	}
}

var testDB *pgxpool.Pool
var testRedisClient *redis.Client

// getTestClients connects to the test database and Redis.
// It reads TEST_DATABASE_URL and TEST_REDIS_URL from the environment.
func getTestClients(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testDB == nil {
		pool, err := database.NewConnectionPoolFromURL(dsn, 4, 1)
		require.NoError(t, err, "Failed to connect to test database")
		testDB = pool
	}

	runMigrations(t)

	// --- Redis Setup ---
	if testRedisClient == nil {
		redisAddr := os.Getenv("TEST_REDIS_URL")
		if redisAddr == "" {
			log.Println("WARN: TEST_REDIS_URL not set. Revocation tests will be skipped.")
		} else {
			rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
			ctxRedis, cancelRedis := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancelRedis()
			if err := rdb.Ping(ctxRedis).Err(); err != nil {
				log.Printf("WARN: Failed to connect to test Redis at %s: %v. Revocation tests will be skipped.", redisAddr, err)
			} else {
				log.Println("Successfully connected to test Redis.")
				testRedisClient = rdb
			}
		}
	}
	return testDB, testRedisClient
}

// runMigrations applies the embedded schema.
func runMigrations(t *testing.T) {
	t.Helper()
	require.NoError(t, database.Migrate(context.Background(), testDB))
}

// cleanupTables truncates the given tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	require.NoError(t, err, "Failed to truncate tables")
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// cleanupRedis flushes the test Redis database. Use with caution!
func cleanupRedis(t *testing.T, client *redis.Client) {
	t.Helper()
	if client == nil {
		return
	}
	err := client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "Failed to flush test Redis database")
	log.Println("Cleaned test Redis database (FLUSHDB).")
}
