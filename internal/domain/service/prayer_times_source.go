package service

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"
)

// PrayerTimesSource defines the interface for the external prayer timing
// provider. Implementations must bound the call with a timeout and fail
// rather than hang.
type PrayerTimesSource interface {
	// FetchTimings returns the five prayer clock times for the given date and
	// coordinates.
	FetchTimings(ctx context.Context, date time.Time, lat, lon float64) (*entity.PrayerTimes, error)
}
