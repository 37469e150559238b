// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert creates the device or refreshes the registration for an already
// known token in a single statement.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"device_id", "platform", "latitude", "longitude", "timezone",
				"last_active_at", "updated_at",
			}),
		}).
		Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// The conflict path keeps the existing row's ID, so read it back.
	var stored model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Where("token = ?", device.Token).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted device")
	}

	device.ID = stored.ID
	device.EnablePrayerNotifications = stored.EnablePrayerNotifications
	device.EnableEventNotifications = stored.EnableEventNotifications
	device.NotifyBeforeMinutes = stored.NotifyBeforeMinutes
	device.EnabledPrayers = stored.EnabledPrayers
	device.CreatedAt = stored.CreatedAt
	device.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByToken retrieves a device by its FCM token.
func (repo *deviceRepository) FindByToken(ctx context.Context, token string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByID retrieves a device by its record ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdatePreferences persists the device's notification preferences.
func (repo *deviceRepository) UpdatePreferences(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	// Select forces the listed columns so zero values (disabled flags, zero
	// lead time) are written, and the struct path keeps the JSON serializer
	// for enabled_prayers.
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Select("latitude", "longitude", "timezone",
			"enable_prayer_notifications", "enable_event_notifications",
			"notify_before_minutes", "enabled_prayers", "last_active_at").
		Updates(deviceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// FindPrayerEligible retrieves every device with prayer notifications enabled
// and both coordinates present.
func (repo *deviceRepository) FindPrayerEligible(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("enable_prayer_notifications = ?", true).
		Where("latitude IS NOT NULL").
		Where("longitude IS NOT NULL").
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prayer-eligible devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeleteByToken removes a device registration.
func (repo *deviceRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteInactiveSince removes devices whose last activity predates the cutoff.
func (repo *deviceRepository) DeleteInactiveSince(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("last_active_at < ?", cutoff).
		Delete(&model.DeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete inactive devices")
	}

	return result.RowsAffected, nil
}

// toDeviceDomain maps a persistence model to a pure domain entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	return &entity.Device{
		ID:                        data.ID,
		Token:                     data.Token,
		DeviceID:                  data.DeviceID,
		Platform:                  data.Platform,
		Latitude:                  data.Latitude,
		Longitude:                 data.Longitude,
		Timezone:                  data.Timezone,
		EnablePrayerNotifications: data.EnablePrayerNotifications,
		EnableEventNotifications:  data.EnableEventNotifications,
		NotifyBeforeMinutes:       data.NotifyBeforeMinutes,
		EnabledPrayers:            data.EnabledPrayers,
		LastActiveAt:              data.LastActiveAt,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}

// fromDeviceDomain maps a domain entity to a persistence model.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	return &model.DeviceModel{
		ID:                        data.ID,
		Token:                     data.Token,
		DeviceID:                  data.DeviceID,
		Platform:                  data.Platform,
		Latitude:                  data.Latitude,
		Longitude:                 data.Longitude,
		Timezone:                  data.Timezone,
		EnablePrayerNotifications: data.EnablePrayerNotifications,
		EnableEventNotifications:  data.EnableEventNotifications,
		NotifyBeforeMinutes:       data.NotifyBeforeMinutes,
		EnabledPrayers:            data.EnabledPrayers,
		LastActiveAt:              data.LastActiveAt,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}
}
