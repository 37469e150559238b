// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
)

// RegisterDeviceInput carries the registration payload. Token is the
// identity key; everything else is optional metadata.
type RegisterDeviceInput struct {
	Token     string   `json:"token"`
	DeviceID  string   `json:"device_id"`
	Platform  string   `json:"platform"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timezone  string   `json:"timezone"`
}

// UpdatePreferencesInput carries a partial preference update; nil fields are
// left unchanged.
type UpdatePreferencesInput struct {
	EnablePrayerNotifications *bool            `json:"enable_prayer_notifications"`
	EnableEventNotifications  *bool            `json:"enable_event_notifications"`
	NotifyBeforeMinutes       *int             `json:"notify_before_minutes"`
	Latitude                  *float64         `json:"latitude"`
	Longitude                 *float64         `json:"longitude"`
	Timezone                  *string          `json:"timezone"`
	EnabledPrayers            *map[string]bool `json:"enabled_prayers"`
}

// DeviceUsecase defines the interface for device registration and
// preference management.
type DeviceUsecase interface {
	// Register creates or refreshes a device registration by token.
	Register(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error)

	// UpdatePreferences applies a partial preference update to the device.
	UpdatePreferences(ctx context.Context, token string, input *UpdatePreferencesInput) (*entity.Device, error)

	// GetByToken retrieves a device registration.
	GetByToken(ctx context.Context, token string) (*entity.Device, error)

	// Unregister removes a device registration.
	Unregister(ctx context.Context, token string) error

	// ListPrayerEligible retrieves every device that should receive prayer
	// reminders: prayer notifications enabled and both coordinates present.
	ListPrayerEligible(ctx context.Context) ([]*entity.Device, error)

	// PurgeInactive removes devices with no activity for the inactivity
	// window, returning the number removed.
	PurgeInactive(ctx context.Context) (int64, error)
}
