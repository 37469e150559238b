// Package notification implements push delivery through Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"fmt"

	"mihrab/config"
	"mihrab/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseGateway struct {
	client *messaging.Client
}

// NewFirebaseGateway creates a new Firebase push gateway instance
func NewFirebaseGateway(ctx context.Context, cfg *config.Config) (service.NotificationGateway, error) {
	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseGateway{
		client: client,
	}, nil
}

// SendToDevice sends a push notification to a single device token
func (s *firebaseGateway) SendToDevice(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification to device: %w", err)
	}

	return nil
}

// SendToTopic fans a push notification out to every subscriber of the topic
func (s *firebaseGateway) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification to topic: %w", err)
	}

	return nil
}
