// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNotifyBeforeMinutes is the lead time applied when a device has no
// explicit preference.
const DefaultNotifyBeforeMinutes = 5

// Device represents a mobile app installation registered for push
// notifications. The FCM token is the identity key: re-registering with the
// same token updates the existing record.
type Device struct {
	ID                        uuid.UUID       `json:"id"`                          // The Global Unique Identifier (GUID) for the device record.
	Token                     string          `json:"token"`                       // Firebase Cloud Messaging token, unique per installation.
	DeviceID                  string          `json:"device_id"`                   // Optional device identifier from the client.
	Platform                  string          `json:"platform"`                    // Device platform (ios, android).
	Latitude                  *float64        `json:"latitude"`                    // Last known latitude; nil when unknown.
	Longitude                 *float64        `json:"longitude"`                   // Last known longitude; nil when unknown.
	Timezone                  string          `json:"timezone"`                    // IANA timezone label reported by the client.
	EnablePrayerNotifications bool            `json:"enable_prayer_notifications"` // Whether prayer reminders are enabled.
	EnableEventNotifications  bool            `json:"enable_event_notifications"`  // Whether event broadcasts are enabled.
	NotifyBeforeMinutes       int             `json:"notify_before_minutes"`       // Lead time in minutes before each prayer.
	EnabledPrayers            map[string]bool `json:"enabled_prayers"`             // Per-prayer enable flags; a missing key means enabled.
	LastActiveAt              time.Time       `json:"last_active_at"`              // Timestamp of the last client activity.
	CreatedAt                 time.Time       `json:"created_at"`                  // Timestamp of when this device was registered.
	UpdatedAt                 time.Time       `json:"updated_at"`                  // Timestamp of the last modification.
}

// HasCoordinates reports whether the device has a usable location. A device
// without coordinates cannot receive prayer reminders.
func (d *Device) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// PrayerEnabled reports whether reminders for the named prayer are enabled.
// Map keys are lowercase prayer names as sent by the client. A prayer absent
// from the map is enabled; only an explicit false disables it.
func (d *Device) PrayerEnabled(prayer string) bool {
	if d.EnabledPrayers == nil {
		return true
	}
	enabled, ok := d.EnabledPrayers[strings.ToLower(prayer)]

	return !ok || enabled
}

// LeadTime returns the device's notification lead time, falling back to the
// default when the stored value is negative.
func (d *Device) LeadTime() time.Duration {
	minutes := d.NotifyBeforeMinutes
	if minutes < 0 {
		minutes = DefaultNotifyBeforeMinutes
	}

	return time.Duration(minutes) * time.Minute
}
