package usecase

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
)

// SchedulerUsecase computes prayer reminder fire times, persists them in the
// notification queue, and sweeps due records for delivery.
type SchedulerUsecase interface {
	// ScheduleForDevice recomputes today's reminders for one device. Unsent
	// future reminders are cleared first so repeated calls never duplicate
	// rows. Returns the number of reminders scheduled.
	ScheduleForDevice(ctx context.Context, device *entity.Device) (int, error)

	// CancelForDevice removes the device's pending future reminders, used
	// when the device opts out of prayer notifications. Returns the number
	// of reminders removed.
	CancelForDevice(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// ScheduleDaily recomputes today's reminders for every eligible device.
	// A failure on one device is logged and does not abort the rest.
	ScheduleDaily(ctx context.Context) (int, error)

	// ProcessDuePrayerReminders dispatches every due, unsent reminder to its
	// device and marks it sent. Returns the number dispatched. Delivery is
	// at-least-once: a reminder sent but not marked is re-sent next sweep.
	ProcessDuePrayerReminders(ctx context.Context) (int, error)

	// ProcessDueBroadcasts dispatches due broadcast notifications to their
	// kind's topic and deletes them. Returns the number dispatched.
	ProcessDueBroadcasts(ctx context.Context) (int, error)

	// PurgeSentReminders removes delivered reminders older than the
	// retention window, returning the number removed.
	PurgeSentReminders(ctx context.Context) (int64, error)
}
