package usecase

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput carries the payload for creating or updating a calendar event.
// On update, nil fields are left unchanged.
type EventInput struct {
	Name               *string    `json:"name"`
	Description        *string    `json:"description"`
	DateHijri          *string    `json:"date_hijri"`
	EstimatedGregorian *time.Time `json:"estimated_gregorian"`
}

// EventUsecase defines the interface for Islamic calendar event management.
type EventUsecase interface {
	// Create inserts a new event.
	Create(ctx context.Context, input *EventInput) (*entity.IslamicEvent, error)

	// Get retrieves an event by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.IslamicEvent, error)

	// List retrieves every event, newest first.
	List(ctx context.Context) ([]*entity.IslamicEvent, error)

	// ListUpcoming retrieves events not yet past, soonest first.
	ListUpcoming(ctx context.Context) ([]*entity.IslamicEvent, error)

	// Update applies a partial update to an event.
	Update(ctx context.Context, id uuid.UUID, input *EventInput) (*entity.IslamicEvent, error)

	// Delete removes an event.
	Delete(ctx context.Context, id uuid.UUID) error
}
