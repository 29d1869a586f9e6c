package services

import (
	"context"
	"fmt"
	"log"

	"biodata-api/internal/models"
	"biodata-api/internal/storage"

	"github.com/jackc/pgx/v5"
)

// TxBeginner opens the transaction that create and update run in.
// *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

const maxListLimit = 500

type biodataService struct {
	db   TxBeginner
	repo storage.BiodataRepository
}

// NewBiodataService creates a new instance of BiodataService.
func NewBiodataService(db TxBeginner, repo storage.BiodataRepository) BiodataService {
	return &biodataService{db: db, repo: repo}
}

// Create stores the biodata and all of its children, or nothing at all.
func (s *biodataService) Create(ctx context.Context, ownerID int64, in *models.BiodataInput) (int64, error) {
	if in == nil {
		return 0, fmt.Errorf("%w: empty biodata", ErrValidation)
	}

	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("CreateBiodata: Error beginning transaction: %v", err)
		return 0, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.repo.WithTx(tx).Create(ctx, ownerID, in)
	if err != nil {
		log.Printf("CreateBiodata: Error creating biodata for owner %d: %v", ownerID, err)
		return 0, MapRepoError(err, "creating biodata")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("CreateBiodata: Error committing transaction: %v", err)
		return 0, fmt.Errorf("internal error committing changes: %w", err)
	}
	// --- End Transaction ---
	return id, nil
}

func (s *biodataService) ListForOwner(ctx context.Context, ownerID int64) ([]models.Biodata, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("BiodataService: Error listing biodata for owner %d: %v", ownerID, err)
		return nil, fmt.Errorf("internal error listing biodata: %w", err)
	}
	return list, nil
}

func (s *biodataService) ListAll(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	switch filter.By {
	case "", models.SearchByNama, models.SearchByPosisi, models.SearchByPendidikan:
	default:
		return nil, fmt.Errorf("%w: unknown search field %q", ErrValidation, filter.By)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", ErrValidation)
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Printf("BiodataService: Error listing all biodata: %v", err)
		return nil, fmt.Errorf("internal error listing biodata: %w", err)
	}
	return list, nil
}

func (s *biodataService) Get(ctx context.Context, id int64, ownerID *int64) (*models.Biodata, error) {
	b, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("getting biodata %d as %s", id, ownerLabel(ownerID)))
	}
	return b, nil
}

// Update replaces the scalar fields and every child collection in one transaction.
func (s *biodataService) Update(ctx context.Context, id int64, ownerID *int64, in *models.BiodataInput) error {
	if in == nil {
		return fmt.Errorf("%w: empty biodata", ErrValidation)
	}

	// --- Transaction Start ---
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("UpdateBiodata: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.WithTx(tx).Update(ctx, id, ownerID, in); err != nil {
		return MapRepoError(err, fmt.Sprintf("updating biodata %d as %s", id, ownerLabel(ownerID)))
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("UpdateBiodata: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	// --- End Transaction ---
	return nil
}

func (s *biodataService) Delete(ctx context.Context, id int64, ownerID *int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return MapRepoError(err, fmt.Sprintf("deleting biodata %d as %s", id, ownerLabel(ownerID)))
	}
	return nil
}
