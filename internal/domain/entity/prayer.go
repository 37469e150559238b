// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Canonical prayer names in their fixed daily order.
const (
	PrayerFajr    = "Fajr"
	PrayerDhuhr   = "Dhuhr"
	PrayerAsr     = "Asr"
	PrayerMaghrib = "Maghrib"
	PrayerIsha    = "Isha"
)

// PrayerOrder lists the five daily prayers in chronological order. Scheduling
// always walks this slice so reminder creation is deterministic.
var PrayerOrder = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// PrayerTimes is a per-date snapshot of the five daily prayer clock times,
// stored as "HH:MM" strings exactly as the timing API returns them. At most
// one snapshot exists per calendar date.
type PrayerTimes struct {
	Date    time.Time `json:"date"`    // Calendar date, truncated to local midnight.
	Fajr    string    `json:"fajr"`    // Dawn prayer time.
	Dhuhr   string    `json:"dhuhr"`   // Noon prayer time.
	Asr     string    `json:"asr"`     // Afternoon prayer time.
	Maghrib string    `json:"maghrib"` // Sunset prayer time.
	Isha    string    `json:"isha"`    // Night prayer time.
}

// TimeFor returns the clock time for the named prayer, or an empty string for
// an unknown name.
func (p *PrayerTimes) TimeFor(prayer string) string {
	switch prayer {
	case PrayerFajr:
		return p.Fajr
	case PrayerDhuhr:
		return p.Dhuhr
	case PrayerAsr:
		return p.Asr
	case PrayerMaghrib:
		return p.Maghrib
	case PrayerIsha:
		return p.Isha
	}

	return ""
}
