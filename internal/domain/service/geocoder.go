package service

import (
	"context"

	"mihrab/internal/domain/entity"
)

// Geocoder defines the interface for the external reverse-geocoding
// provider.
type Geocoder interface {
	// ReverseGeocode resolves a coordinate pair to address data.
	ReverseGeocode(ctx context.Context, lat, lon float64) (*entity.Location, error)
}
