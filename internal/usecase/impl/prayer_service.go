package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

type prayerService struct {
	logger *slog.Logger
	cache  repository.PrayerCacheRepository
	source service.PrayerTimesSource
	loc    *time.Location
	now    func() time.Time
}

// NewPrayerService creates a new prayer times service instance.
func NewPrayerService(
	logger *slog.Logger,
	cache repository.PrayerCacheRepository,
	source service.PrayerTimesSource,
	cfg *config.SchedulerConfig,
) usecase.PrayerUsecase {
	loc := time.Local
	if cfg != nil && cfg.Timezone != "" {
		if parsed, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = parsed
		}
	}

	return &prayerService{
		logger: logger,
		cache:  cache,
		source: source,
		loc:    loc,
		now:    time.Now,
	}
}

// GetTodayTimes returns today's prayer times, fetching from the external
// source only on the first call of the day.
//
// The cache key is the calendar date alone: callers at different coordinates
// on the same date share one snapshot. That is acceptable for a
// single-timezone audience and keeps the external source to one call a day.
func (s *prayerService) GetTodayTimes(ctx context.Context, lat, lon float64) (*entity.PrayerTimes, error) {
	today := s.today()

	cached, err := s.cache.FindByDate(ctx, today)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrPrayerTimesNotFound) {
		return nil, fmt.Errorf("failed to read prayer cache: %w", err)
	}

	// No stale-data fallback: if the source is down the lookup fails.
	times, err := s.source.FetchTimings(ctx, today, lat, lon)
	if err != nil {
		s.logger.Error("failed to fetch prayer timings",
			slog.Time("date", today),
			slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("prayer timing source failed")
	}
	times.Date = today

	if err := s.cache.Create(ctx, times); err != nil {
		// A concurrent first-of-the-day lookup may have stored the snapshot
		// already; serve the fetched data either way.
		s.logger.Warn("failed to store prayer cache entry",
			slog.Time("date", today),
			slog.Any("error", err))
	}

	return times, nil
}

// PurgeStale removes snapshots for past dates.
func (s *prayerService) PurgeStale(ctx context.Context) (int64, error) {
	removed, err := s.cache.DeleteBefore(ctx, s.today())
	if err != nil {
		return 0, fmt.Errorf("failed to purge prayer cache: %w", err)
	}

	return removed, nil
}

// today returns the current date truncated to local midnight.
func (s *prayerService) today() time.Time {
	now := s.now().In(s.loc)

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}
