// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPrayerTimesNotFound is returned when no snapshot exists for a date.
var ErrPrayerTimesNotFound = errors.New("prayer times not found")

// PrayerCacheRepository stores one prayer-times snapshot per calendar date.
type PrayerCacheRepository interface {
	// FindByDate retrieves the snapshot for the given date.
	FindByDate(ctx context.Context, date time.Time) (*entity.PrayerTimes, error)

	// Create inserts a snapshot for a date that has none yet.
	Create(ctx context.Context, times *entity.PrayerTimes) error

	// DeleteBefore removes snapshots dated before the cutoff, returning the
	// number of rows removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
