package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
)

// LocationUsecase defines the interface for geographic lookups.
type LocationUsecase interface {
	// ReverseGeocode resolves coordinates to address data, cached by rounded
	// coordinate pair.
	ReverseGeocode(ctx context.Context, lat, lon float64) (*entity.Location, error)

	// Qibla returns the compass bearing and distance from the coordinates to
	// the Kaaba.
	Qibla(lat, lon float64) *entity.QiblaDirection
}
