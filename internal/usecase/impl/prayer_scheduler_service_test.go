package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	mockSvc "mihrab/internal/mocks/service"
	mockUC "mihrab/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testLogger returns a logger that discards everything. Shared by every
// service test in this package.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// schedulerServiceFixtures holds all test dependencies for scheduler tests.
// The concrete service type is kept so tests can pin the clock.
type schedulerServiceFixtures struct {
	service      *prayerSchedulerService
	deviceRepo   *mockRepo.MockDeviceRepository
	scheduleRepo *mockRepo.MockScheduleRepository
	prayerUC     *mockUC.MockPrayerUsecase
	gateway      *mockSvc.MockNotificationGateway
	loc          *time.Location
}

func createTestSchedulerService(t *testing.T) schedulerServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	prayerUC := mockUC.NewMockPrayerUsecase(t)
	gateway := mockSvc.NewMockNotificationGateway(t)

	cfg := &config.SchedulerConfig{Timezone: "Asia/Jakarta"}
	service := NewPrayerSchedulerService(testLogger(), deviceRepo, scheduleRepo, prayerUC, gateway, cfg)

	concrete, ok := service.(*prayerSchedulerService)
	require.True(t, ok)

	return schedulerServiceFixtures{
		service:      concrete,
		deviceRepo:   deviceRepo,
		scheduleRepo: scheduleRepo,
		prayerUC:     prayerUC,
		gateway:      gateway,
		loc:          concrete.loc,
	}
}

// pinClock fixes the service clock to the given wall time in the scheduler
// timezone on an arbitrary fixed date.
func (fx *schedulerServiceFixtures) pinClock(hour, minute int) time.Time {
	now := time.Date(2026, 3, 14, hour, minute, 0, 0, fx.loc)
	fx.service.now = func() time.Time { return now }

	return now
}

func testSchedulerDevice(notifyBefore int) *entity.Device {
	lat := -6.2
	lon := 106.8

	return &entity.Device{
		ID:                        uuid.New(),
		Token:                     "fcm-token-1",
		Platform:                  "android",
		Latitude:                  &lat,
		Longitude:                 &lon,
		Timezone:                  "Asia/Jakarta",
		EnablePrayerNotifications: true,
		NotifyBeforeMinutes:       notifyBefore,
	}
}

func testPrayerTimes() *entity.PrayerTimes {
	return &entity.PrayerTimes{
		Fajr:    "05:10",
		Dhuhr:   "12:00",
		Asr:     "15:15",
		Maghrib: "18:05",
		Isha:    "19:15",
	}
}

func TestSchedulerService_ScheduleForDevice_ReminderDueLeadTimeBeforePrayer(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(4, 50)

	device := testSchedulerDevice(10)
	device.EnabledPrayers = map[string]bool{
		"dhuhr":   false,
		"asr":     false,
		"maghrib": false,
		"isha":    false,
	}

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(testPrayerTimes(), nil)

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)

	var created *entity.ScheduledNotification
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			created = notification
		}).
		Return(nil)

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 1, scheduled)

	require.NotNil(t, created)
	assert.Equal(t, entity.KindAzan, created.Kind)
	assert.Equal(t, "Waktu Fajr", created.Title)
	assert.Equal(t, entity.PrayerFajr, created.Meta["prayer_name"])
	assert.Equal(t, "05:10", created.Meta["prayer_time"])
	require.NotNil(t, created.DeviceID)
	assert.Equal(t, device.ID, *created.DeviceID)

	// Fajr at 05:10 with a 10 minute lead fires at 05:00.
	wantDue := time.Date(2026, 3, 14, 5, 0, 0, 0, fx.loc)
	assert.True(t, created.DueAt.Equal(wantDue))
}

func TestSchedulerService_ScheduleForDevice_PassedPrayersNotBackfilled(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(17, 40)

	device := testSchedulerDevice(10)

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(testPrayerTimes(), nil)

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)

	var names []string
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			names = append(names, notification.Meta["prayer_name"].(string))
		}).
		Return(nil)

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	require.NoError(t, err)

	// At 17:40 even Maghrib's 17:55 window has not opened yet, but Fajr
	// through Asr are gone for the day and must not roll forward.
	assert.Equal(t, 2, scheduled)
	assert.Equal(t, []string{entity.PrayerMaghrib, entity.PrayerIsha}, names)
}

func TestSchedulerService_ScheduleForDevice_DisabledPrayerSkipped(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(3, 0)

	device := testSchedulerDevice(10)
	device.EnabledPrayers = map[string]bool{"asr": false}

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(testPrayerTimes(), nil)

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)

	var names []string
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			names = append(names, notification.Meta["prayer_name"].(string))
		}).
		Return(nil)

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 4, scheduled)
	assert.NotContains(t, names, entity.PrayerAsr)
	assert.Contains(t, names, entity.PrayerFajr)
	assert.Contains(t, names, entity.PrayerIsha)
}

func TestSchedulerService_ScheduleForDevice_MalformedClockSkipsOnlyThatPrayer(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(3, 0)

	device := testSchedulerDevice(10)

	times := testPrayerTimes()
	times.Dhuhr = "not-a-time"

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(times, nil)

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)

	var names []string
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			names = append(names, notification.Meta["prayer_name"].(string))
		}).
		Return(nil)

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 4, scheduled)
	assert.NotContains(t, names, entity.PrayerDhuhr)
}

func TestSchedulerService_ScheduleForDevice_MissingCoordinates(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	device := testSchedulerDevice(10)
	device.Latitude = nil

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	assert.Equal(t, 0, scheduled)
	assert.ErrorIs(t, err, ErrMissingCoordinates)
}

func TestSchedulerService_ScheduleForDevice_ZeroLeadAtPrayerTime(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(4, 50)

	device := testSchedulerDevice(0)
	device.EnabledPrayers = map[string]bool{
		"dhuhr":   false,
		"asr":     false,
		"maghrib": false,
		"isha":    false,
	}

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(testPrayerTimes(), nil)

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, device.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)

	var created *entity.ScheduledNotification
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			created = notification
		}).
		Return(nil)

	scheduled, err := fx.service.ScheduleForDevice(ctx, device)
	require.NoError(t, err)
	assert.Equal(t, 1, scheduled)

	require.NotNil(t, created)
	wantDue := time.Date(2026, 3, 14, 5, 10, 0, 0, fx.loc)
	assert.True(t, created.DueAt.Equal(wantDue))
	assert.Contains(t, created.Body, "Telah masuk waktu Fajr")
}

func TestSchedulerService_ScheduleDaily_FailingDeviceIsolated(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	fx.pinClock(3, 0)

	good := testSchedulerDevice(10)
	good.EnabledPrayers = map[string]bool{
		"dhuhr":   false,
		"asr":     false,
		"maghrib": false,
		"isha":    false,
	}
	bad := testSchedulerDevice(10)

	fx.deviceRepo.EXPECT().
		FindPrayerEligible(ctx).
		Return([]*entity.Device{bad, good}, nil)

	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(nil, errors.New("source down")).
		Once()
	fx.prayerUC.EXPECT().
		GetTodayTimes(ctx, -6.2, 106.8).
		Return(testPrayerTimes(), nil).
		Once()

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, good.ID, entity.KindAzan, mock.Anything).
		Return(int64(0), nil)
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)

	total, err := fx.service.ScheduleDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestSchedulerService_CancelForDevice_RemovesPendingReminders(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(10, 0)

	deviceID := uuid.New()

	fx.scheduleRepo.EXPECT().
		DeleteFutureUnsentForDevice(ctx, deviceID, entity.KindAzan, now).
		Return(int64(3), nil)

	removed, err := fx.service.CancelForDevice(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSchedulerService_ProcessDuePrayerReminders_DispatchesAndMarksSent(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	device := testSchedulerDevice(10)
	record := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Kind:     entity.KindAzan,
		Title:    "Waktu Fajr",
		Body:     "10 menit lagi masuk waktu Fajr (05:10)",
		Meta:     map[string]any{"prayer_name": "Fajr"},
		DueAt:    now,
		DeviceID: &device.ID,
	}

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		Return([]*entity.ScheduledNotification{record}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil)

	fx.gateway.EXPECT().
		SendToDevice(ctx, device.Token, record.Title, record.Body, map[string]string{"prayer_name": "Fajr"}).
		Return(nil)

	fx.scheduleRepo.EXPECT().
		MarkSent(ctx, record.ID, now).
		Return(nil)

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSchedulerService_ProcessDuePrayerReminders_EmptyDueSet(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		Return([]*entity.ScheduledNotification{}, nil)

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	fx.gateway.AssertNotCalled(t, "SendToDevice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerService_ProcessDuePrayerReminders_ConcurrentSweepClaimedRecord(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	device := testSchedulerDevice(10)
	record := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Kind:     entity.KindAzan,
		Title:    "Waktu Fajr",
		DueAt:    now,
		DeviceID: &device.ID,
	}

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		Return([]*entity.ScheduledNotification{record}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil)

	fx.gateway.EXPECT().
		SendToDevice(ctx, device.Token, record.Title, record.Body, mock.Anything).
		Return(nil)

	fx.scheduleRepo.EXPECT().
		MarkSent(ctx, record.ID, now).
		Return(repository.ErrAlreadySent)

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSchedulerService_ProcessDuePrayerReminders_OrphanedReminderDeleted(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	deviceID := uuid.New()
	record := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Kind:     entity.KindAzan,
		DueAt:    now,
		DeviceID: &deviceID,
	}

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		Return([]*entity.ScheduledNotification{record}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	fx.scheduleRepo.EXPECT().
		Delete(ctx, record.ID).
		Return(nil)

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	fx.gateway.AssertNotCalled(t, "SendToDevice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerService_ProcessDuePrayerReminders_GatewayFailureLeavesRecordUnsent(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	device := testSchedulerDevice(10)
	record := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Kind:     entity.KindAzan,
		DueAt:    now,
		DeviceID: &device.ID,
	}

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		Return([]*entity.ScheduledNotification{record}, nil)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil)

	fx.gateway.EXPECT().
		SendToDevice(ctx, device.Token, record.Title, record.Body, mock.Anything).
		Return(errors.New("fcm unavailable"))

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	fx.scheduleRepo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
}

func TestSchedulerService_ProcessDuePrayerReminders_SecondSweepExcludesSentRecord(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(5, 0)

	device := testSchedulerDevice(10)
	record := &entity.ScheduledNotification{
		ID:       uuid.New(),
		Kind:     entity.KindAzan,
		Title:    "Waktu Fajr",
		Body:     "10 menit lagi masuk waktu Fajr (05:10)",
		Meta:     map[string]any{"prayer_name": "Fajr"},
		DueAt:    now,
		DeviceID: &device.ID,
	}

	// The stubbed queue mirrors the real table: FindDue surfaces only
	// unsent rows and MarkSent flips the flag.
	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindAzan, now).
		RunAndReturn(func(context.Context, entity.NotificationKind, time.Time) ([]*entity.ScheduledNotification, error) {
			if record.Sent {
				return []*entity.ScheduledNotification{}, nil
			}

			return []*entity.ScheduledNotification{record}, nil
		}).Times(2)

	fx.deviceRepo.EXPECT().
		FindByID(ctx, device.ID).
		Return(device, nil).Once()

	fx.gateway.EXPECT().
		SendToDevice(ctx, device.Token, record.Title, record.Body, map[string]string{"prayer_name": "Fajr"}).
		Return(nil).Once()

	fx.scheduleRepo.EXPECT().
		MarkSent(ctx, record.ID, now).
		RunAndReturn(func(context.Context, uuid.UUID, time.Time) error {
			record.Sent = true

			return nil
		}).Once()

	sent, err := fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = fx.service.ProcessDuePrayerReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSchedulerService_ProcessDueBroadcasts_SendsToTopicAndDeletes(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(9, 0)

	record := &entity.ScheduledNotification{
		ID:    uuid.New(),
		Kind:  entity.KindEvent,
		Title: "Ramadan dimulai",
		Body:  "Marhaban ya Ramadan",
		DueAt: now,
	}

	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindEvent, now).
		Return([]*entity.ScheduledNotification{record}, nil)
	fx.scheduleRepo.EXPECT().
		FindDue(ctx, entity.KindGeneral, now).
		Return([]*entity.ScheduledNotification{}, nil)

	fx.gateway.EXPECT().
		SendToTopic(ctx, "EVENT", record.Title, record.Body, map[string]string{}).
		Return(nil)

	fx.scheduleRepo.EXPECT().
		Delete(ctx, record.ID).
		Return(nil)

	sent, err := fx.service.ProcessDueBroadcasts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSchedulerService_PurgeSentReminders(t *testing.T) {
	fx := createTestSchedulerService(t)

	ctx := context.Background()
	now := fx.pinClock(12, 0)

	cutoff := now.Add(-defaultSentRetention)
	fx.scheduleRepo.EXPECT().
		DeleteSentBefore(ctx, cutoff).
		Return(int64(3), nil)

	removed, err := fx.service.PurgeSentReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
