package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
)

const defaultDeviceInactivity = 30 * 24 * time.Hour

type deviceService struct {
	deviceRepo repository.DeviceRepository
	inactivity time.Duration
	now        func() time.Time
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(deviceRepo repository.DeviceRepository, cfg *config.SchedulerConfig) usecase.DeviceUsecase {
	inactivity := defaultDeviceInactivity
	if cfg != nil && cfg.DeviceInactivity > 0 {
		inactivity = cfg.DeviceInactivity
	}

	return &deviceService{
		deviceRepo: deviceRepo,
		inactivity: inactivity,
		now:        time.Now,
	}
}

// Register creates or refreshes a registration keyed by the FCM token.
// Preferences of an existing registration are preserved; only the metadata
// from the payload is updated.
func (s *deviceService) Register(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	now := s.now()

	device := &entity.Device{
		ID:                        uuid.New(),
		Token:                     input.Token,
		DeviceID:                  input.DeviceID,
		Platform:                  input.Platform,
		Latitude:                  input.Latitude,
		Longitude:                 input.Longitude,
		Timezone:                  input.Timezone,
		EnablePrayerNotifications: true,
		EnableEventNotifications:  true,
		NotifyBeforeMinutes:       entity.DefaultNotifyBeforeMinutes,
		LastActiveAt:              now,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	return device, nil
}

// UpdatePreferences applies a partial preference update; nil fields keep
// their stored values. Updating also refreshes the activity timestamp.
func (s *deviceService) UpdatePreferences(ctx context.Context, token string, input *usecase.UpdatePreferencesInput) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by token: %w", err)
	}

	if input.EnablePrayerNotifications != nil {
		device.EnablePrayerNotifications = *input.EnablePrayerNotifications
	}
	if input.EnableEventNotifications != nil {
		device.EnableEventNotifications = *input.EnableEventNotifications
	}
	if input.NotifyBeforeMinutes != nil {
		device.NotifyBeforeMinutes = *input.NotifyBeforeMinutes
	}
	if input.Latitude != nil {
		device.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		device.Longitude = input.Longitude
	}
	if input.Timezone != nil {
		device.Timezone = *input.Timezone
	}
	if input.EnabledPrayers != nil {
		device.EnabledPrayers = *input.EnabledPrayers
	}
	device.LastActiveAt = s.now()

	if err := s.deviceRepo.UpdatePreferences(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to update device preferences: %w", err)
	}

	return device, nil
}

// GetByToken retrieves a device registration.
func (s *deviceService) GetByToken(ctx context.Context, token string) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find device by token: %w", err)
	}

	return device, nil
}

// Unregister removes a device registration.
func (s *deviceService) Unregister(ctx context.Context, token string) error {
	if err := s.deviceRepo.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// ListPrayerEligible retrieves every device that can receive prayer
// reminders.
func (s *deviceService) ListPrayerEligible(ctx context.Context) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindPrayerEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible devices: %w", err)
	}

	return devices, nil
}

// PurgeInactive removes devices silent for longer than the inactivity
// window.
func (s *deviceService) PurgeInactive(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.inactivity)

	removed, err := s.deviceRepo.DeleteInactiveSince(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inactive devices: %w", err)
	}

	return removed, nil
}
