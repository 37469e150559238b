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
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    *deviceService
	deviceRepo *mockRepo.MockDeviceRepository
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := &config.SchedulerConfig{DeviceInactivity: 30 * 24 * time.Hour}
	service := NewDeviceService(deviceRepo, cfg)

	concrete, ok := service.(*deviceService)
	require.True(t, ok)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	concrete.now = func() time.Time { return now }

	return deviceServiceFixtures{
		service:    concrete,
		deviceRepo: deviceRepo,
		now:        now,
	}
}

func TestDeviceService_Register_AppliesDefaultPreferences(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	lat := -6.2
	lon := 106.8
	input := &usecase.RegisterDeviceInput{
		Token:     "fcm-token-1",
		Platform:  "android",
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  "Asia/Jakarta",
	}

	var stored *entity.Device
	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Run(func(_ context.Context, device *entity.Device) {
			stored = device
		}).
		Return(nil)

	device, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "fcm-token-1", device.Token)
	assert.True(t, device.EnablePrayerNotifications)
	assert.True(t, device.EnableEventNotifications)
	assert.Equal(t, entity.DefaultNotifyBeforeMinutes, device.NotifyBeforeMinutes)
	assert.Equal(t, fx.now, device.LastActiveAt)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_Register_UpsertError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Return(errors.New("database error"))

	device, err := fx.service.Register(ctx, &usecase.RegisterDeviceInput{Token: "fcm-token-1"})
	assert.Nil(t, device)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert device")
}

func TestDeviceService_UpdatePreferences_PartialUpdate(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	lat := -6.2
	lon := 106.8
	existing := &entity.Device{
		ID:                        uuid.New(),
		Token:                     "fcm-token-1",
		Latitude:                  &lat,
		Longitude:                 &lon,
		Timezone:                  "Asia/Jakarta",
		EnablePrayerNotifications: true,
		EnableEventNotifications:  true,
		NotifyBeforeMinutes:       5,
	}

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "fcm-token-1").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpdatePreferences(ctx, existing).
		Return(nil)

	minutes := 15
	enabled := map[string]bool{"asr": false}
	device, err := fx.service.UpdatePreferences(ctx, "fcm-token-1", &usecase.UpdatePreferencesInput{
		NotifyBeforeMinutes: &minutes,
		EnabledPrayers:      &enabled,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, device.NotifyBeforeMinutes)
	assert.Equal(t, enabled, device.EnabledPrayers)
	// Fields absent from the payload keep their stored values.
	assert.True(t, device.EnablePrayerNotifications)
	assert.Equal(t, "Asia/Jakarta", device.Timezone)
	assert.Equal(t, &lat, device.Latitude)
	assert.Equal(t, fx.now, device.LastActiveAt)
}

func TestDeviceService_UpdatePreferences_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "missing-token").
		Return(nil, repository.ErrDeviceNotFound)

	device, err := fx.service.UpdatePreferences(ctx, "missing-token", &usecase.UpdatePreferencesInput{})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_GetByToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existing := &entity.Device{ID: uuid.New(), Token: "fcm-token-1"}

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "fcm-token-1").
		Return(existing, nil)

	device, err := fx.service.GetByToken(ctx, "fcm-token-1")
	require.NoError(t, err)
	assert.Equal(t, existing, device)
}

func TestDeviceService_GetByToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "missing-token").
		Return(nil, repository.ErrDeviceNotFound)

	device, err := fx.service.GetByToken(ctx, "missing-token")
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_Unregister(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, "fcm-token-1").
		Return(nil)

	err := fx.service.Unregister(ctx, "fcm-token-1")
	assert.NoError(t, err)
}

func TestDeviceService_Unregister_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		DeleteByToken(ctx, "missing-token").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.Unregister(ctx, "missing-token")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_PurgeInactive_UsesInactivityCutoff(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	cutoff := fx.now.Add(-30 * 24 * time.Hour)

	fx.deviceRepo.EXPECT().
		DeleteInactiveSince(ctx, cutoff).
		Return(int64(4), nil)

	removed, err := fx.service.PurgeInactive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
