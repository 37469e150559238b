// Package service defines interfaces for external collaborators the domain
// depends on.
package service

import (
	"context"
)

// NotificationGateway defines the interface for push notification delivery.
// Data values must already be coerced to text; FCM rejects non-string
// payload values.
type NotificationGateway interface {
	// SendToDevice delivers a notification to a single device token.
	SendToDevice(ctx context.Context, token, title, body string, data map[string]string) error

	// SendToTopic fans a notification out to every device subscribed to the
	// topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
