// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationKind tags a scheduled notification with its delivery semantics.
// Azan reminders go to a single device token; every other kind is fanned out
// through the FCM topic named after the kind.
type NotificationKind string

const (
	// KindAzan is a prayer reminder tied to one device.
	KindAzan NotificationKind = "AZAN"
	// KindEvent is a broadcast about an Islamic calendar event.
	KindEvent NotificationKind = "EVENT"
	// KindGeneral is an ad-hoc broadcast.
	KindGeneral NotificationKind = "GENERAL"
)

// Topic returns the FCM topic used for broadcast delivery of this kind.
func (k NotificationKind) Topic() string {
	return string(k)
}

// ScheduledNotification is a durable queue record for a notification that
// should fire at DueAt. The due time is set once at creation and never
// mutated; Sent transitions false to true exactly once.
type ScheduledNotification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	Kind      NotificationKind `json:"kind"`       // Delivery semantics tag.
	Title     string           `json:"title"`      // Notification title.
	Body      string           `json:"body"`       // Notification body text.
	Meta      map[string]any   `json:"meta"`       // Free-form metadata, stringified before FCM delivery.
	DueAt     time.Time        `json:"due_at"`     // Instant at which the notification becomes due.
	Sent      bool             `json:"sent"`       // Whether the notification has been dispatched.
	SentAt    *time.Time       `json:"sent_at"`    // When the dispatch succeeded; nil until then.
	DeviceID  *uuid.UUID       `json:"device_id"`  // Recipient device for azan reminders; nil for broadcasts.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when this record was created.
}

// MetaStrings coerces the metadata values to their textual representation,
// as required by the FCM data payload.
func (n *ScheduledNotification) MetaStrings() map[string]string {
	if len(n.Meta) == 0 {
		return map[string]string{}
	}

	data := make(map[string]string, len(n.Meta))
	for key, value := range n.Meta {
		switch v := value.(type) {
		case string:
			data[key] = v
		default:
			data[key] = fmt.Sprintf("%v", v)
		}
	}

	return data
}
