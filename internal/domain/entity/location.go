// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// CoordinatePrecision is the number of decimal places coordinates are rounded
// to before they are used as a geocode cache key (~11cm resolution).
const CoordinatePrecision = 6

// RoundCoordinate rounds a latitude or longitude to the cache-key precision.
func RoundCoordinate(value float64) float64 {
	factor := math.Pow(10, CoordinatePrecision)

	return math.Round(value*factor) / factor
}

// Location is a cached reverse-geocoding result keyed by rounded
// coordinates.
type Location struct {
	Latitude    float64   `json:"latitude"`     // Rounded latitude (cache key).
	Longitude   float64   `json:"longitude"`    // Rounded longitude (cache key).
	Address     string    `json:"address"`      // Short human-readable address.
	City        string    `json:"city"`         // City name; empty when unknown.
	State       string    `json:"state"`        // State or province; empty when unknown.
	Country     string    `json:"country"`      // Country name; empty when unknown.
	CountryCode string    `json:"country_code"` // ISO country code; empty when unknown.
	PostalCode  string    `json:"postal_code"`  // Postal code; empty when unknown.
	DisplayName string    `json:"display_name"` // Full display name from the geocoder.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this entry was cached.
}

// QiblaDirection is the bearing and great-circle distance from a point to the
// Kaaba in Mecca.
type QiblaDirection struct {
	Latitude  float64 `json:"latitude"`    // Query latitude.
	Longitude float64 `json:"longitude"`   // Query longitude.
	Bearing   float64 `json:"bearing"`     // Compass bearing in degrees, 0 <= bearing < 360.
	DistanceM float64 `json:"distance_m"`  // Great-circle distance in meters.
}
