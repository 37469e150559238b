package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
)

// PrayerUsecase serves daily prayer times through a date-keyed cache.
//
// The cache deliberately ignores coordinates: every caller on the same
// calendar date shares one snapshot. This matches the product's single-region
// audience and keeps the external source to one call per day.
type PrayerUsecase interface {
	// GetTodayTimes returns today's prayer times for the coordinates,
	// fetching and caching on the first call of the day.
	GetTodayTimes(ctx context.Context, lat, lon float64) (*entity.PrayerTimes, error)

	// PurgeStale removes snapshots for past dates, returning the number
	// removed.
	PurgeStale(ctx context.Context) (int64, error)
}
