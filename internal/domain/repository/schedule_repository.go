// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNotificationNotFound is returned when a scheduled notification is not found.
	ErrNotificationNotFound = errors.New("scheduled notification not found")
	// ErrAlreadySent is returned by MarkSent when the record was already
	// dispatched by another sweep.
	ErrAlreadySent = errors.New("notification already sent")
)

// ScheduleRepository defines the interface for the durable notification
// queue.
type ScheduleRepository interface {
	// Create inserts a new scheduled notification.
	Create(ctx context.Context, notification *entity.ScheduledNotification) error

	// FindByID retrieves a scheduled notification by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// FindDue retrieves unsent records of the given kind due at or before now.
	FindDue(ctx context.Context, kind entity.NotificationKind, now time.Time) ([]*entity.ScheduledNotification, error)

	// FindUpcoming retrieves unsent records due at or after now, soonest first.
	FindUpcoming(ctx context.Context, now time.Time) ([]*entity.ScheduledNotification, error)

	// MarkSent flips the record's sent flag in a single conditional update.
	// It returns ErrAlreadySent when the flag was already set, so two
	// concurrent sweeps cannot both claim the same record.
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error

	// Delete removes a scheduled notification by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteFutureUnsentForDevice removes the device's unsent records of the
	// given kind due after now. Used to clear stale reminders before a
	// recompute so repeated scheduling never duplicates rows.
	DeleteFutureUnsentForDevice(ctx context.Context, deviceID uuid.UUID, kind entity.NotificationKind, now time.Time) (int64, error)

	// DeleteSentBefore removes sent records whose delivery predates the
	// cutoff, returning the number of rows removed.
	DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
