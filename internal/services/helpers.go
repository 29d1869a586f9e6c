package services

import (
	"errors"
	"fmt"
	"log"

	"biodata-api/internal/storage"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// ownerLabel renders an optional owner scope for log lines.
func ownerLabel(ownerID *int64) string {
	if ownerID == nil {
		return "admin"
	}
	return fmt.Sprintf("owner %d", *ownerID)
}
