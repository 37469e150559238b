package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	scheduleRepo repository.ScheduleRepository
	gateway      service.NotificationGateway
	now          func() time.Time
}

// NewNotificationService creates a new ad-hoc notification service instance.
func NewNotificationService(
	scheduleRepo repository.ScheduleRepository,
	gateway service.NotificationGateway,
) usecase.NotificationUsecase {
	return &notificationService{
		scheduleRepo: scheduleRepo,
		gateway:      gateway,
		now:          time.Now,
	}
}

// SendNow broadcasts immediately to the kind's topic.
func (s *notificationService) SendNow(ctx context.Context, input *usecase.NotificationInput) error {
	record := entity.ScheduledNotification{Meta: input.Meta}

	if err := s.gateway.SendToTopic(ctx, input.Kind.Topic(), input.Title, input.Body, record.MetaStrings()); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// Schedule queues a broadcast for later delivery by the due sweep.
func (s *notificationService) Schedule(ctx context.Context, input *usecase.NotificationInput, dueAt time.Time) (*entity.ScheduledNotification, error) {
	notification := &entity.ScheduledNotification{
		ID:        uuid.New(),
		Kind:      input.Kind,
		Title:     input.Title,
		Body:      input.Body,
		Meta:      input.Meta,
		DueAt:     dueAt,
		CreatedAt: s.now(),
	}

	if err := s.scheduleRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to schedule notification: %w", err)
	}

	return notification, nil
}

// ListScheduled retrieves queued notifications not yet due.
func (s *notificationService) ListScheduled(ctx context.Context) ([]*entity.ScheduledNotification, error) {
	notifications, err := s.scheduleRepo.FindUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled notifications: %w", err)
	}

	return notifications, nil
}

// DeleteScheduled removes a queued notification.
func (s *notificationService) DeleteScheduled(ctx context.Context, id uuid.UUID) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return fmt.Errorf("failed to delete scheduled notification: %w", err)
	}

	return nil
}
