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
)

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// Create inserts a new scheduled notification.
func (repo *scheduleRepository) Create(ctx context.Context, notification *entity.ScheduledNotification) error {
	scheduleM := fromScheduleDomain(notification)

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create scheduled notification")
	}

	notification.ID = scheduleM.ID
	notification.CreatedAt = scheduleM.CreatedAt

	return nil
}

// FindByID retrieves a scheduled notification by ID.
func (repo *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	var scheduleM model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find scheduled notification by ID")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindDue retrieves unsent records of the given kind due at or before now.
func (repo *scheduleRepository) FindDue(ctx context.Context, kind entity.NotificationKind, now time.Time) ([]*entity.ScheduledNotification, error) {
	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Where("sent = ?", false).
		Where("due_at <= ?", now).
		Order("due_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due notifications")
	}

	return toScheduleDomains(scheduleModels), nil
}

// FindUpcoming retrieves unsent records due at or after now, soonest first.
func (repo *scheduleRepository) FindUpcoming(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error) {
	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("sent = ?", false).
		Where("due_at >= ?", now).
		Order("due_at ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming notifications")
	}

	return toScheduleDomains(scheduleModels), nil
}

// MarkSent flips the record's sent flag in a single conditional update. The
// WHERE sent = false guard makes the claim atomic: a second sweep racing on
// the same record affects zero rows and gets ErrAlreadySent.
func (repo *scheduleRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduleModel{}).
		Where("id = ?", id).
		Where("sent = ?", false).
		Updates(map[string]any{
			"sent":    true,
			"sent_at": sentAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification sent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlreadySent
	}

	return nil
}

// Delete removes a scheduled notification by ID.
func (repo *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ScheduleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete scheduled notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteFutureUnsentForDevice removes the device's unsent records of the
// given kind due after now.
func (repo *scheduleRepository) DeleteFutureUnsentForDevice(ctx context.Context, deviceID uuid.UUID, kind entity.NotificationKind, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Where("kind = ?", string(kind)).
		Where("sent = ?", false).
		Where("due_at > ?", now).
		Delete(&model.ScheduleModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete future unsent notifications")
	}

	return result.RowsAffected, nil
}

// DeleteSentBefore removes sent records whose delivery predates the cutoff.
func (repo *scheduleRepository) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("sent = ?", true).
		Where("sent_at < ?", cutoff).
		Delete(&model.ScheduleModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete sent notifications")
	}

	return result.RowsAffected, nil
}

func toScheduleDomains(scheduleModels []*model.ScheduleModel) []*entity.ScheduledNotification {
	notifications := make([]*entity.ScheduledNotification, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		notifications = append(notifications, toScheduleDomain(scheduleM))
	}

	return notifications
}

// toScheduleDomain maps a persistence model to a pure domain entity.
func toScheduleDomain(data *model.ScheduleModel) *entity.ScheduledNotification {
	return &entity.ScheduledNotification{
		ID:        data.ID,
		Kind:      entity.NotificationKind(data.Kind),
		DeviceID:  data.DeviceID,
		Title:     data.Title,
		Body:      data.Body,
		DueAt:     data.DueAt,
		Sent:      data.Sent,
		SentAt:    data.SentAt,
		Meta:      data.Meta,
		CreatedAt: data.CreatedAt,
	}
}

// fromScheduleDomain maps a domain entity to a persistence model.
func fromScheduleDomain(data *entity.ScheduledNotification) *model.ScheduleModel {
	return &model.ScheduleModel{
		ID:        data.ID,
		Kind:      string(data.Kind),
		DeviceID:  data.DeviceID,
		Title:     data.Title,
		Body:      data.Body,
		DueAt:     data.DueAt,
		Sent:      data.Sent,
		SentAt:    data.SentAt,
		Meta:      data.Meta,
		CreatedAt: data.CreatedAt,
	}
}
