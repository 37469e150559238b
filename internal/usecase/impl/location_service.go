package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// kaaba is the reference point for qibla calculations, orb order (lon, lat).
var kaaba = orb.Point{39.8262, 21.4225}

type locationService struct {
	logger    *slog.Logger
	cacheRepo repository.LocationCacheRepository
	geocoder  service.Geocoder
}

// NewLocationService creates a new location service instance.
func NewLocationService(
	logger *slog.Logger,
	cacheRepo repository.LocationCacheRepository,
	geocoder service.Geocoder,
) usecase.LocationUsecase {
	return &locationService{
		logger:    logger,
		cacheRepo: cacheRepo,
		geocoder:  geocoder,
	}
}

// ReverseGeocode resolves coordinates to address data. Results are cached by
// the coordinate pair rounded to six decimals, so nearby repeat lookups skip
// the external provider.
func (s *locationService) ReverseGeocode(ctx context.Context, lat, lon float64) (*entity.Location, error) {
	roundedLat := entity.RoundCoordinate(lat)
	roundedLon := entity.RoundCoordinate(lon)

	cached, err := s.cacheRepo.Find(ctx, roundedLat, roundedLon)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, fmt.Errorf("failed to read location cache: %w", err)
	}

	location, err := s.geocoder.ReverseGeocode(ctx, roundedLat, roundedLon)
	if err != nil {
		s.logger.Error("failed to reverse geocode",
			slog.Float64("lat", roundedLat),
			slog.Float64("lon", roundedLon),
			slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("reverse geocoding source failed")
	}
	location.Latitude = roundedLat
	location.Longitude = roundedLon

	if err := s.cacheRepo.Create(ctx, location); err != nil {
		s.logger.Warn("failed to store location cache entry",
			slog.Float64("lat", roundedLat),
			slog.Float64("lon", roundedLon),
			slog.Any("error", err))
	}

	return location, nil
}

// Qibla returns the compass bearing and great-circle distance from the
// coordinates to the Kaaba.
func (s *locationService) Qibla(lat, lon float64) *entity.QiblaDirection {
	point := orb.Point{lon, lat}

	bearing := geo.Bearing(point, kaaba)
	if bearing < 0 {
		bearing += 360
	}

	return &entity.QiblaDirection{
		Latitude:  lat,
		Longitude: lon,
		Bearing:   bearing,
		DistanceM: geo.DistanceHaversine(point, kaaba),
	}
}
