package model

import (
	"time"
)

// PrayerCacheModel is the GORM-specific struct for the 'prayer_times_cache'
// table. One row per calendar date, keyed by the "YYYY-MM-DD" string.
type PrayerCacheModel struct {
	Date      string `gorm:"type:varchar(10);primary_key"`
	Fajr      string `gorm:"type:varchar(5);not null"`
	Dhuhr     string `gorm:"type:varchar(5);not null"`
	Asr       string `gorm:"type:varchar(5);not null"`
	Maghrib   string `gorm:"type:varchar(5);not null"`
	Isha      string `gorm:"type:varchar(5);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrayerCacheModel) TableName() string {
	return "prayer_times_cache"
}
