package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	mockSvc "mihrab/internal/mocks/service"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification
// service tests.
type notificationServiceFixtures struct {
	service      *notificationService
	scheduleRepo *mockRepo.MockScheduleRepository
	gateway      *mockSvc.MockNotificationGateway
	now          time.Time
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	gateway := mockSvc.NewMockNotificationGateway(t)

	service := NewNotificationService(scheduleRepo, gateway)

	concrete, ok := service.(*notificationService)
	require.True(t, ok)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	concrete.now = func() time.Time { return now }

	return notificationServiceFixtures{
		service:      concrete,
		scheduleRepo: scheduleRepo,
		gateway:      gateway,
		now:          now,
	}
}

func TestNotificationService_SendNow_StringifiesMeta(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.NotificationInput{
		Kind:  entity.KindGeneral,
		Title: "Pengumuman",
		Body:  "Pembaruan aplikasi tersedia",
		Meta:  map[string]any{"version": 3, "channel": "stable"},
	}

	fx.gateway.EXPECT().
		SendToTopic(ctx, "GENERAL", input.Title, input.Body, map[string]string{
			"version": "3",
			"channel": "stable",
		}).
		Return(nil)

	err := fx.service.SendNow(ctx, input)
	assert.NoError(t, err)
}

func TestNotificationService_SendNow_GatewayError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	input := &usecase.NotificationInput{Kind: entity.KindGeneral, Title: "Pengumuman"}

	fx.gateway.EXPECT().
		SendToTopic(ctx, "GENERAL", input.Title, input.Body, mock.Anything).
		Return(errors.New("fcm unavailable"))

	err := fx.service.SendNow(ctx, input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}

func TestNotificationService_Schedule_QueuesWithoutSending(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	dueAt := fx.now.Add(2 * time.Hour)
	input := &usecase.NotificationInput{
		Kind:  entity.KindEvent,
		Title: "Malam Nisfu Syaban",
		Body:  "Jangan lupa memperbanyak ibadah malam ini",
	}

	var stored *entity.ScheduledNotification
	fx.scheduleRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, notification *entity.ScheduledNotification) {
			stored = notification
		}).
		Return(nil)

	notification, err := fx.service.Schedule(ctx, input, dueAt)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, entity.KindEvent, notification.Kind)
	assert.True(t, notification.DueAt.Equal(dueAt))
	assert.False(t, notification.Sent)
	assert.Nil(t, notification.DeviceID)
	assert.Equal(t, fx.now, notification.CreatedAt)
	fx.gateway.AssertNotCalled(t, "SendToTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_ListScheduled(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	upcoming := []*entity.ScheduledNotification{
		{ID: uuid.New(), Kind: entity.KindEvent},
	}

	fx.scheduleRepo.EXPECT().
		FindUpcoming(ctx, fx.now).
		Return(upcoming, nil)

	notifications, err := fx.service.ListScheduled(ctx)
	require.NoError(t, err)
	assert.Equal(t, upcoming, notifications)
}

func TestNotificationService_DeleteScheduled_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.scheduleRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrNotificationNotFound)

	err := fx.service.DeleteScheduled(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
