package usecase

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationInput carries the content of an ad-hoc notification.
type NotificationInput struct {
	Kind  entity.NotificationKind `json:"kind"`
	Title string                  `json:"title"`
	Body  string                  `json:"body"`
	Meta  map[string]any          `json:"meta"`
}

// NotificationUsecase defines the interface for ad-hoc broadcast
// notifications, sent immediately or scheduled for later.
type NotificationUsecase interface {
	// SendNow broadcasts the notification to its kind's topic immediately.
	SendNow(ctx context.Context, input *NotificationInput) error

	// Schedule queues the notification for delivery at dueAt.
	Schedule(ctx context.Context, input *NotificationInput, dueAt time.Time) (*entity.ScheduledNotification, error)

	// ListScheduled retrieves queued notifications not yet due, soonest
	// first.
	ListScheduled(ctx context.Context) ([]*entity.ScheduledNotification, error)

	// DeleteScheduled removes a queued notification.
	DeleteScheduled(ctx context.Context, id uuid.UUID) error
}
