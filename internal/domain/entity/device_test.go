package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDevice_PrayerEnabled_DefaultsToTrue(t *testing.T) {
	device := &Device{}

	for _, prayer := range PrayerOrder {
		assert.True(t, device.PrayerEnabled(prayer), prayer)
	}
}

func TestDevice_PrayerEnabled_MissingKeyMeansEnabled(t *testing.T) {
	device := &Device{EnabledPrayers: map[string]bool{"asr": false}}

	assert.False(t, device.PrayerEnabled(PrayerAsr))
	assert.True(t, device.PrayerEnabled(PrayerFajr))
	assert.True(t, device.PrayerEnabled(PrayerIsha))
}

func TestDevice_PrayerEnabled_KeysAreLowercase(t *testing.T) {
	device := &Device{EnabledPrayers: map[string]bool{"maghrib": false}}

	// Canonical prayer names are capitalized; the lookup must still hit the
	// lowercase client keys.
	assert.False(t, device.PrayerEnabled(PrayerMaghrib))
}

func TestDevice_LeadTime(t *testing.T) {
	device := &Device{NotifyBeforeMinutes: 15}
	assert.Equal(t, 15*time.Minute, device.LeadTime())

	zero := &Device{NotifyBeforeMinutes: 0}
	assert.Equal(t, time.Duration(0), zero.LeadTime())

	negative := &Device{NotifyBeforeMinutes: -1}
	assert.Equal(t, DefaultNotifyBeforeMinutes*time.Minute, negative.LeadTime())
}

func TestDevice_HasCoordinates(t *testing.T) {
	lat := -6.2
	lon := 106.8

	assert.True(t, (&Device{Latitude: &lat, Longitude: &lon}).HasCoordinates())
	assert.False(t, (&Device{Latitude: &lat}).HasCoordinates())
	assert.False(t, (&Device{}).HasCoordinates())
}
