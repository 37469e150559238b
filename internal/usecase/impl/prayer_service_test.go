package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	mockSvc "mihrab/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// prayerServiceFixtures holds all test dependencies for prayer service tests.
type prayerServiceFixtures struct {
	service *prayerService
	cache   *mockRepo.MockPrayerCacheRepository
	source  *mockSvc.MockPrayerTimesSource
	today   time.Time
}

func createTestPrayerService(t *testing.T) prayerServiceFixtures {
	cache := mockRepo.NewMockPrayerCacheRepository(t)
	source := mockSvc.NewMockPrayerTimesSource(t)

	cfg := &config.SchedulerConfig{Timezone: "Asia/Jakarta"}
	service := NewPrayerService(testLogger(), cache, source, cfg)

	concrete, ok := service.(*prayerService)
	require.True(t, ok)

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, concrete.loc)
	concrete.now = func() time.Time { return now }

	return prayerServiceFixtures{
		service: concrete,
		cache:   cache,
		source:  source,
		today:   time.Date(2026, 3, 14, 0, 0, 0, 0, concrete.loc),
	}
}

func TestPrayerService_GetTodayTimes_CacheHitSkipsSource(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()
	cached := &entity.PrayerTimes{Date: fx.today, Fajr: "04:40"}

	fx.cache.EXPECT().
		FindByDate(ctx, fx.today).
		Return(cached, nil)

	times, err := fx.service.GetTodayTimes(ctx, -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, cached, times)
	fx.source.AssertNotCalled(t, "FetchTimings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPrayerService_GetTodayTimes_CacheMissFetchesAndStores(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()
	fetched := &entity.PrayerTimes{Fajr: "04:40", Dhuhr: "11:55", Asr: "15:10", Maghrib: "18:00", Isha: "19:10"}

	fx.cache.EXPECT().
		FindByDate(ctx, fx.today).
		Return(nil, repository.ErrPrayerTimesNotFound)

	fx.source.EXPECT().
		FetchTimings(ctx, fx.today, -6.2, 106.8).
		Return(fetched, nil)

	fx.cache.EXPECT().
		Create(ctx, fetched).
		Return(nil)

	times, err := fx.service.GetTodayTimes(ctx, -6.2, 106.8)
	require.NoError(t, err)
	assert.True(t, times.Date.Equal(fx.today))
	assert.Equal(t, "04:40", times.Fajr)
}

func TestPrayerService_GetTodayTimes_CacheStoreFailureStillServes(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()
	fetched := &entity.PrayerTimes{Fajr: "04:40"}

	fx.cache.EXPECT().
		FindByDate(ctx, fx.today).
		Return(nil, repository.ErrPrayerTimesNotFound)

	fx.source.EXPECT().
		FetchTimings(ctx, fx.today, -6.2, 106.8).
		Return(fetched, nil)

	fx.cache.EXPECT().
		Create(ctx, fetched).
		Return(errors.New("duplicate key"))

	times, err := fx.service.GetTodayTimes(ctx, -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, "04:40", times.Fajr)
}

func TestPrayerService_GetTodayTimes_SourceFailure(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()

	fx.cache.EXPECT().
		FindByDate(ctx, fx.today).
		Return(nil, repository.ErrPrayerTimesNotFound)

	fx.source.EXPECT().
		FetchTimings(ctx, fx.today, -6.2, 106.8).
		Return(nil, errors.New("timeout"))

	times, err := fx.service.GetTodayTimes(ctx, -6.2, 106.8)
	assert.Nil(t, times)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestPrayerService_GetTodayTimes_CacheReadError(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()

	fx.cache.EXPECT().
		FindByDate(ctx, fx.today).
		Return(nil, errors.New("connection refused"))

	times, err := fx.service.GetTodayTimes(ctx, -6.2, 106.8)
	assert.Nil(t, times)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prayer cache")
}

func TestPrayerService_PurgeStale(t *testing.T) {
	fx := createTestPrayerService(t)

	ctx := context.Background()

	fx.cache.EXPECT().
		DeleteBefore(ctx, fx.today).
		Return(int64(2), nil)

	removed, err := fx.service.PurgeStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
