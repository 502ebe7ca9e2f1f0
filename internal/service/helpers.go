package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/apperr"
)

// notFoundOr translates a repository error: missing rows become a typed
// not-found error for the named resource, everything else goes through the
// database classifier.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(resource)
	}
	return apperr.FromDBError(err)
}

// removeDuplicateUUIDs removes duplicate UUIDs from a slice
func removeDuplicateUUIDs(uuids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	result := make([]uuid.UUID, 0, len(uuids))

	for _, id := range uuids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}
