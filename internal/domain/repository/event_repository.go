// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the interface for Islamic calendar events.
type EventRepository interface {
	// Create inserts a new event.
	Create(ctx context.Context, event *entity.IslamicEvent) error

	// FindByID retrieves an event by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IslamicEvent, error)

	// FindAll retrieves every event, newest first.
	FindAll(ctx context.Context) ([]*entity.IslamicEvent, error)

	// FindUpcoming retrieves events whose estimated Gregorian date is at or
	// after now, soonest first.
	FindUpcoming(ctx context.Context, now time.Time) ([]*entity.IslamicEvent, error)

	// Update persists changes to an existing event.
	Update(ctx context.Context, event *entity.IslamicEvent) error

	// Delete removes an event by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
