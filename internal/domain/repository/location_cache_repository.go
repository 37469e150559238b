// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when no cached entry exists for a
// coordinate pair.
var ErrLocationNotFound = errors.New("location not found")

// LocationCacheRepository stores reverse-geocoding results keyed by rounded
// coordinates.
type LocationCacheRepository interface {
	// Find retrieves the cached entry for the rounded coordinate pair.
	Find(ctx context.Context, lat, lon float64) (*entity.Location, error)

	// Create inserts a new cache entry.
	Create(ctx context.Context, location *entity.Location) error
}
