package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
)

type eventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewEventService creates a new calendar event service instance.
func NewEventService(eventRepo repository.EventRepository) usecase.EventUsecase {
	return &eventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Create inserts a new event. Name and Hijri date are required by the
// handler; everything else is optional.
func (s *eventService) Create(ctx context.Context, input *usecase.EventInput) (*entity.IslamicEvent, error) {
	now := s.now()

	event := &entity.IslamicEvent{
		ID:                 uuid.New(),
		EstimatedGregorian: input.EstimatedGregorian,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.DateHijri != nil {
		event.DateHijri = *input.DateHijri
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// Get retrieves an event by ID.
func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*entity.IslamicEvent, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	return event, nil
}

// List retrieves every event, newest first.
func (s *eventService) List(ctx context.Context) ([]*entity.IslamicEvent, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// ListUpcoming retrieves events whose estimated date has not passed yet.
func (s *eventService) ListUpcoming(ctx context.Context) ([]*entity.IslamicEvent, error) {
	events, err := s.eventRepo.FindUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	return events, nil
}

// Update applies a partial update; nil fields keep their stored values.
func (s *eventService) Update(ctx context.Context, id uuid.UUID, input *usecase.EventInput) (*entity.IslamicEvent, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.DateHijri != nil {
		event.DateHijri = *input.DateHijri
	}
	if input.EstimatedGregorian != nil {
		event.EstimatedGregorian = input.EstimatedGregorian
	}
	event.UpdatedAt = s.now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes an event.
func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
