// Package impl contains the concrete implementations of the use case
// interfaces.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
)

// ErrMissingCoordinates is returned when a device without a location is
// passed to the per-device computation.
var ErrMissingCoordinates = errors.New("device has no coordinates")

const defaultSentRetention = 7 * 24 * time.Hour

// broadcastKinds are the notification kinds delivered via topic fan-out
// rather than per-device tokens.
var broadcastKinds = []entity.NotificationKind{entity.KindEvent, entity.KindGeneral}

type prayerSchedulerService struct {
	logger        *slog.Logger
	deviceRepo    repository.DeviceRepository
	scheduleRepo  repository.ScheduleRepository
	prayerUC      usecase.PrayerUsecase
	gateway       service.NotificationGateway
	loc           *time.Location
	sentRetention time.Duration
	now           func() time.Time
}

// NewPrayerSchedulerService creates a new prayer scheduler service instance.
func NewPrayerSchedulerService(
	logger *slog.Logger,
	deviceRepo repository.DeviceRepository,
	scheduleRepo repository.ScheduleRepository,
	prayerUC usecase.PrayerUsecase,
	gateway service.NotificationGateway,
	cfg *config.SchedulerConfig,
) usecase.SchedulerUsecase {
	loc := time.Local
	retention := defaultSentRetention

	if cfg != nil {
		if cfg.Timezone != "" {
			if parsed, err := time.LoadLocation(cfg.Timezone); err == nil {
				loc = parsed
			} else {
				logger.Warn("invalid scheduler timezone, using local",
					slog.String("timezone", cfg.Timezone),
					slog.Any("error", err))
			}
		}
		if cfg.SentRetention > 0 {
			retention = cfg.SentRetention
		}
	}

	return &prayerSchedulerService{
		logger:        logger,
		deviceRepo:    deviceRepo,
		scheduleRepo:  scheduleRepo,
		prayerUC:      prayerUC,
		gateway:       gateway,
		loc:           loc,
		sentRetention: retention,
		now:           time.Now,
	}
}

// ScheduleForDevice recomputes today's prayer reminders for one device.
//
// Pending future reminders for the device are deleted before inserting so a
// preference change or repeated trigger never leaves duplicate rows behind.
// A prayer whose clock time fails to parse is skipped on its own; the
// remaining prayers are still scheduled.
func (s *prayerSchedulerService) ScheduleForDevice(ctx context.Context, device *entity.Device) (int, error) {
	if !device.HasCoordinates() {
		return 0, ErrMissingCoordinates
	}

	times, err := s.prayerUC.GetTodayTimes(ctx, *device.Latitude, *device.Longitude)
	if err != nil {
		return 0, fmt.Errorf("failed to get today's prayer times: %w", err)
	}

	now := s.now().In(s.loc)

	if _, err := s.scheduleRepo.DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, now); err != nil {
		return 0, fmt.Errorf("failed to clear pending reminders: %w", err)
	}

	scheduled := 0
	for _, prayer := range entity.PrayerOrder {
		if !device.PrayerEnabled(prayer) {
			continue
		}

		clock := times.TimeFor(prayer)
		prayerAt, err := parseClockToday(clock, now, s.loc)
		if err != nil {
			s.logger.Warn("skipping prayer with malformed clock time",
				slog.String("prayer", prayer),
				slog.String("clock", clock),
				slog.Any("error", err))

			continue
		}

		dueAt := prayerAt.Add(-device.LeadTime())
		// No back-filling: a reminder whose window already passed today is
		// simply skipped, not rolled forward.
		if !dueAt.After(now) {
			continue
		}

		reminder := s.buildReminder(device, prayer, clock, dueAt, now)
		if err := s.scheduleRepo.Create(ctx, reminder); err != nil {
			s.logger.Error("failed to store prayer reminder",
				slog.String("prayer", prayer),
				slog.String("deviceID", device.ID.String()),
				slog.Any("error", err))

			continue
		}
		scheduled++
	}

	return scheduled, nil
}

// CancelForDevice removes the device's pending future azan reminders so
// they stop firing after the device opts out of prayer notifications.
func (s *prayerSchedulerService) CancelForDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	now := s.now().In(s.loc)

	removed, err := s.scheduleRepo.DeleteFutureUnsentForDevice(ctx, deviceID, entity.KindAzan, now)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel pending reminders: %w", err)
	}

	return removed, nil
}

// ScheduleDaily recomputes reminders for every eligible device. Devices are
// processed independently: one failing device contributes zero and the rest
// continue.
func (s *prayerSchedulerService) ScheduleDaily(ctx context.Context) (int, error) {
	devices, err := s.deviceRepo.FindPrayerEligible(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list eligible devices: %w", err)
	}

	total := 0
	for _, device := range devices {
		scheduled, err := s.ScheduleForDevice(ctx, device)
		if err != nil {
			s.logger.Error("failed to schedule reminders for device",
				slog.String("deviceID", device.ID.String()),
				slog.Any("error", err))

			continue
		}
		total += scheduled
	}

	s.logger.Info("daily prayer reminders scheduled",
		slog.Int("devices", len(devices)),
		slog.Int("scheduled", total))

	return total, nil
}

// ProcessDuePrayerReminders dispatches every due unsent reminder. The sent
// flag is flipped with a conditional update, so a concurrent sweep that
// already claimed a record makes this one skip it. A dispatch that succeeds
// but fails to be marked is re-sent next sweep: delivery is at-least-once.
func (s *prayerSchedulerService) ProcessDuePrayerReminders(ctx context.Context) (int, error) {
	now := s.now()

	due, err := s.scheduleRepo.FindDue(ctx, entity.KindAzan, now)
	if err != nil {
		return 0, fmt.Errorf("failed to query due reminders: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	sent := 0
	for _, record := range due {
		if record.DeviceID == nil {
			// Should not happen for azan records.
			s.logger.Warn("prayer reminder without device reference",
				slog.String("id", record.ID.String()))

			continue
		}

		device, err := s.deviceRepo.FindByID(ctx, *record.DeviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				// The device unregistered after scheduling; drop the orphan.
				s.deleteRecord(ctx, record.ID)

				continue
			}
			s.logger.Error("failed to resolve reminder device",
				slog.String("id", record.ID.String()),
				slog.Any("error", err))

			continue
		}

		if err := s.gateway.SendToDevice(ctx, device.Token, record.Title, record.Body, record.MetaStrings()); err != nil {
			// Left unsent: the record stays due and is retried next sweep.
			s.logger.Error("failed to dispatch prayer reminder",
				slog.String("id", record.ID.String()),
				slog.Any("error", err))

			continue
		}

		if err := s.scheduleRepo.MarkSent(ctx, record.ID, s.now()); err != nil {
			if errors.Is(err, repository.ErrAlreadySent) {
				continue
			}
			s.logger.Error("failed to mark reminder sent",
				slog.String("id", record.ID.String()),
				slog.Any("error", err))

			continue
		}
		sent++
	}

	s.logger.Info("prayer reminder sweep completed",
		slog.Int("due", len(due)),
		slog.Int("sent", sent))

	return sent, nil
}

// ProcessDueBroadcasts dispatches due broadcast notifications to their
// kind's topic. Broadcasts are single-shot: the record is deleted after a
// successful send, not retained.
func (s *prayerSchedulerService) ProcessDueBroadcasts(ctx context.Context) (int, error) {
	now := s.now()
	sent := 0

	for _, kind := range broadcastKinds {
		due, err := s.scheduleRepo.FindDue(ctx, kind, now)
		if err != nil {
			return sent, fmt.Errorf("failed to query due broadcasts: %w", err)
		}

		for _, record := range due {
			if err := s.gateway.SendToTopic(ctx, record.Kind.Topic(), record.Title, record.Body, record.MetaStrings()); err != nil {
				s.logger.Error("failed to dispatch broadcast",
					slog.String("id", record.ID.String()),
					slog.Any("error", err))

				continue
			}

			s.deleteRecord(ctx, record.ID)
			sent++
		}
	}

	return sent, nil
}

// PurgeSentReminders removes delivered reminders past the retention window.
func (s *prayerSchedulerService) PurgeSentReminders(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.sentRetention)

	removed, err := s.scheduleRepo.DeleteSentBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sent reminders: %w", err)
	}

	return removed, nil
}

func (s *prayerSchedulerService) buildReminder(device *entity.Device, prayer, clock string, dueAt, now time.Time) *entity.ScheduledNotification {
	leadMinutes := int(device.LeadTime() / time.Minute)

	body := fmt.Sprintf("%d menit lagi masuk waktu %s (%s)", leadMinutes, prayer, clock)
	if leadMinutes == 0 {
		body = fmt.Sprintf("Telah masuk waktu %s (%s)", prayer, clock)
	}

	return &entity.ScheduledNotification{
		ID:    uuid.New(),
		Kind:  entity.KindAzan,
		Title: fmt.Sprintf("Waktu %s", prayer),
		Body:  body,
		Meta: map[string]any{
			"prayer_name":           prayer,
			"prayer_time":           clock,
			"notify_before_minutes": leadMinutes,
		},
		DueAt:     dueAt,
		DeviceID:  &device.ID,
		CreatedAt: now,
	}
}

func (s *prayerSchedulerService) deleteRecord(ctx context.Context, id uuid.UUID) {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete notification record",
			slog.String("id", id.String()),
			slog.Any("error", err))
	}
}

// parseClockToday resolves an "HH:MM" clock string to today's date in the
// scheduler timezone.
func parseClockToday(clock string, now time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}

	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}
