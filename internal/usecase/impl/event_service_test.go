package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service   *eventService
	eventRepo *mockRepo.MockEventRepository
	now       time.Time
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)

	service := NewEventService(eventRepo)

	concrete, ok := service.(*eventService)
	require.True(t, ok)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	concrete.now = func() time.Time { return now }

	return eventServiceFixtures{
		service:   concrete,
		eventRepo: eventRepo,
		now:       now,
	}
}

func TestEventService_Create(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	name := "Idul Fitri"
	dateHijri := "1 Syawal 1447"
	gregorian := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	var stored *entity.IslamicEvent
	fx.eventRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.IslamicEvent) {
			stored = event
		}).
		Return(nil)

	event, err := fx.service.Create(ctx, &usecase.EventInput{
		Name:               &name,
		DateHijri:          &dateHijri,
		EstimatedGregorian: &gregorian,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Idul Fitri", event.Name)
	assert.Equal(t, "1 Syawal 1447", event.DateHijri)
	assert.Equal(t, &gregorian, event.EstimatedGregorian)
	assert.Equal(t, fx.now, event.CreatedAt)
	assert.NotEqual(t, uuid.Nil, event.ID)
}

func TestEventService_Get_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.eventRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrEventNotFound)

	event, err := fx.service.Get(ctx, id)
	assert.Nil(t, event)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_ListUpcoming(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	upcoming := []*entity.IslamicEvent{{ID: uuid.New(), Name: "Idul Adha"}}

	fx.eventRepo.EXPECT().
		FindUpcoming(ctx, fx.now).
		Return(upcoming, nil)

	events, err := fx.service.ListUpcoming(ctx)
	require.NoError(t, err)
	assert.Equal(t, upcoming, events)
}

func TestEventService_Update_PartialFieldsPreserved(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.IslamicEvent{
		ID:          id,
		Name:        "Isra Miraj",
		Description: "Peringatan Isra Miraj",
		DateHijri:   "27 Rajab 1447",
	}

	fx.eventRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.eventRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	description := "Peringatan Isra Miraj Nabi Muhammad SAW"
	event, err := fx.service.Update(ctx, id, &usecase.EventInput{Description: &description})
	require.NoError(t, err)

	assert.Equal(t, description, event.Description)
	// Absent fields keep their stored values.
	assert.Equal(t, "Isra Miraj", event.Name)
	assert.Equal(t, "27 Rajab 1447", event.DateHijri)
	assert.Equal(t, fx.now, event.UpdatedAt)
}

func TestEventService_Update_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.eventRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrEventNotFound)

	event, err := fx.service.Update(ctx, id, &usecase.EventInput{})
	assert.Nil(t, event)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.eventRepo.EXPECT().
		Delete(ctx, id).
		Return(repository.ErrEventNotFound)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}
