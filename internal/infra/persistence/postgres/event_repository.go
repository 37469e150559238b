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

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.IslamicEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEventNotFound.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves an event by ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IslamicEvent, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindAll retrieves every event, newest first.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.IslamicEvent, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events")
	}

	return toEventDomains(eventModels), nil
}

// FindUpcoming retrieves events whose estimated Gregorian date is at or after
// now, soonest first.
func (repo *eventRepository) FindUpcoming(ctx context.Context, now time.Time) ([]*entity.IslamicEvent, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("estimated_gregorian >= ?", now).
		Order("estimated_gregorian ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming events")
	}

	return toEventDomains(eventModels), nil
}

// Update persists changes to an existing event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.IslamicEvent) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Select("name", "description", "date_hijri", "estimated_gregorian").
		Updates(eventM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func toEventDomains(eventModels []*model.EventModel) []*entity.IslamicEvent {
	events := make([]*entity.IslamicEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events
}

// toEventDomain maps a persistence model to a pure domain entity.
func toEventDomain(data *model.EventModel) *entity.IslamicEvent {
	return &entity.IslamicEvent{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		DateHijri:          data.DateHijri,
		EstimatedGregorian: data.EstimatedGregorian,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromEventDomain maps a domain entity to a persistence model.
func fromEventDomain(data *entity.IslamicEvent) *model.EventModel {
	return &model.EventModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		DateHijri:          data.DateHijri,
		EstimatedGregorian: data.EstimatedGregorian,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
