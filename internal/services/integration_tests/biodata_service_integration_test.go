//go:build integration

package integration_tests

import (
	"context"
	"testing"

	"biodata-api/internal/models"
	"biodata-api/internal/services"
	"biodata-api/internal/storage/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBiodataService(t *testing.T) (services.BiodataService, *models.User, *models.User) {
	t.Helper()

	pool, _ := getTestClients(t)
	ctx := context.Background()
	cleanupTables(ctx, t, pool, "users", "biodata", "education", "training", "work_experience")

	users := postgres.NewUserRepo(pool)
	owner, err := users.Create(ctx, "owner@example.com", "hash", models.RoleUser)
	require.NoError(t, err)
	other, err := users.Create(ctx, "other@example.com", "hash", models.RoleUser)
	require.NoError(t, err)

	return services.NewBiodataService(pool, postgres.NewBiodataRepo(pool)), owner, other
}

func TestBiodataService_Lifecycle(t *testing.T) {
	svc, owner, other := setupBiodataService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, owner.ID, sampleBiodata("Budi"))
	require.NoError(t, err)

	t.Run("DuplicateChildRowsAreKept", func(t *testing.T) {
		b, err := svc.Get(ctx, id, &owner.ID)
		require.NoError(t, err)
		assert.Len(t, b.Training, 2)
	})

	t.Run("OtherOwnerSeesNotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, id, &other.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)

		err = svc.Delete(ctx, id, &other.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("AdminUpdateReplacesChildren", func(t *testing.T) {
		in := sampleBiodata("Budi Santoso")
		in.Training = nil
		in.WorkExperience = []models.WorkExperience{{NamaPerusahaan: "Acme", Tahun: ptrInt(2023)}}
		require.NoError(t, svc.Update(ctx, id, nil, in))

		b, err := svc.Get(ctx, id, nil)
		require.NoError(t, err)
		assert.Equal(t, "Budi Santoso", b.Nama)
		assert.Empty(t, b.Training)
		require.Len(t, b.WorkExperience, 1)
		assert.Equal(t, "Acme", b.WorkExperience[0].NamaPerusahaan)
	})

	t.Run("ListAllIncludesOwnerEmail", func(t *testing.T) {
		list, err := svc.ListAll(ctx, models.BiodataFilter{Search: "santoso"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "owner@example.com", list[0].UserEmail)
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, id, &owner.ID))

		list, err := svc.ListForOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
