// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database
// operations. Devices are keyed by their FCM token.
type DeviceRepository interface {
	// Upsert creates the device or, when the token is already registered,
	// updates the registration metadata in place.
	Upsert(ctx context.Context, device *entity.Device) error

	// FindByToken retrieves a device by its FCM token.
	FindByToken(ctx context.Context, token string) (*entity.Device, error)

	// FindByID retrieves a device by its record ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// UpdatePreferences persists the device's notification preferences.
	UpdatePreferences(ctx context.Context, device *entity.Device) error

	// FindPrayerEligible retrieves every device with prayer notifications
	// enabled and both coordinates present.
	FindPrayerEligible(ctx context.Context) ([]*entity.Device, error)

	// DeleteByToken removes a device registration.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteInactiveSince removes devices whose last activity predates the
	// cutoff, returning the number of rows removed.
	DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int64, error)
}
