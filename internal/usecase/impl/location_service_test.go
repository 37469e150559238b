package impl

import (
	"context"
	"testing"

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

// locationServiceFixtures holds all test dependencies for location service
// tests.
type locationServiceFixtures struct {
	service   *locationService
	cacheRepo *mockRepo.MockLocationCacheRepository
	geocoder  *mockSvc.MockGeocoder
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	cacheRepo := mockRepo.NewMockLocationCacheRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	service := NewLocationService(testLogger(), cacheRepo, geocoder)

	concrete, ok := service.(*locationService)
	require.True(t, ok)

	return locationServiceFixtures{
		service:   concrete,
		cacheRepo: cacheRepo,
		geocoder:  geocoder,
	}
}

func TestLocationService_ReverseGeocode_CacheHitSkipsProvider(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	cached := &entity.Location{Latitude: -6.2, Longitude: 106.8, City: "Jakarta"}

	fx.cacheRepo.EXPECT().
		Find(ctx, -6.2, 106.8).
		Return(cached, nil)

	location, err := fx.service.ReverseGeocode(ctx, -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, cached, location)
	fx.geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_ReverseGeocode_RoundsBeforeLookup(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	resolved := &entity.Location{City: "Jakarta"}

	// 7+ decimal inputs collapse onto the six decimal cache key.
	fx.cacheRepo.EXPECT().
		Find(ctx, -6.175392, 106.827153).
		Return(nil, repository.ErrLocationNotFound)

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, -6.175392, 106.827153).
		Return(resolved, nil)

	fx.cacheRepo.EXPECT().
		Create(ctx, resolved).
		Return(nil)

	location, err := fx.service.ReverseGeocode(ctx, -6.1753921, 106.8271534)
	require.NoError(t, err)
	assert.Equal(t, -6.175392, location.Latitude)
	assert.Equal(t, 106.827153, location.Longitude)
}

func TestLocationService_ReverseGeocode_CacheStoreFailureStillServes(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	resolved := &entity.Location{City: "Jakarta"}

	fx.cacheRepo.EXPECT().
		Find(ctx, -6.2, 106.8).
		Return(nil, repository.ErrLocationNotFound)

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, -6.2, 106.8).
		Return(resolved, nil)

	fx.cacheRepo.EXPECT().
		Create(ctx, resolved).
		Return(errors.New("duplicate key"))

	location, err := fx.service.ReverseGeocode(ctx, -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", location.City)
}

func TestLocationService_ReverseGeocode_ProviderFailure(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.cacheRepo.EXPECT().
		Find(ctx, -6.2, 106.8).
		Return(nil, repository.ErrLocationNotFound)

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, -6.2, 106.8).
		Return(nil, errors.New("rate limited"))

	location, err := fx.service.ReverseGeocode(ctx, -6.2, 106.8)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestLocationService_Qibla_FromJakarta(t *testing.T) {
	fx := createTestLocationService(t)

	direction := fx.service.Qibla(-6.2, 106.8)

	// Jakarta faces the Kaaba roughly west-northwest across ~7900 km.
	assert.InDelta(t, 295.0, direction.Bearing, 1.5)
	assert.InDelta(t, 7.9e6, direction.DistanceM, 1.5e5)
	assert.Equal(t, -6.2, direction.Latitude)
	assert.Equal(t, 106.8, direction.Longitude)
}

func TestLocationService_Qibla_BearingNormalized(t *testing.T) {
	fx := createTestLocationService(t)

	// From Tokyo the raw bearing is negative; callers always get [0, 360).
	direction := fx.service.Qibla(35.68, 139.69)

	assert.GreaterOrEqual(t, direction.Bearing, 0.0)
	assert.Less(t, direction.Bearing, 360.0)
}
