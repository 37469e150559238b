// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IslamicEvent is a calendar event anchored to a Hijri date, with an
// estimated Gregorian date for upcoming-event queries.
type IslamicEvent struct {
	ID                 uuid.UUID  `json:"id"`                  // The Global Unique Identifier (GUID) for the event.
	Name               string     `json:"name"`                // Event name.
	Description        string     `json:"description"`         // Optional description.
	DateHijri          string     `json:"date_hijri"`          // Hijri date label, e.g. "10 Muharram".
	EstimatedGregorian *time.Time `json:"estimated_gregorian"` // Estimated Gregorian date; nil when not yet computed.
	CreatedAt          time.Time  `json:"created_at"`          // Timestamp of when this record was created.
	UpdatedAt          time.Time  `json:"updated_at"`          // Timestamp of the last modification.
}
