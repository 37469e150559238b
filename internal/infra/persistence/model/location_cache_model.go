package model

import (
	"time"
)

// LocationCacheModel is the GORM-specific struct for the
// 'location_cache' table. Coordinates are rounded before insertion so
// nearby lookups share a row.
type LocationCacheModel struct {
	ID          uint    `gorm:"primary_key;autoIncrement"`
	Latitude    float64 `gorm:"type:double precision;not null;uniqueIndex:idx_loc_cache_coord"`
	Longitude   float64 `gorm:"type:double precision;not null;uniqueIndex:idx_loc_cache_coord"`
	Address     string  `gorm:"type:varchar(255)"`
	City        string  `gorm:"type:varchar(255)"`
	State       string  `gorm:"type:varchar(255)"`
	Country     string  `gorm:"type:varchar(255)"`
	CountryCode string  `gorm:"type:varchar(8)"`
	PostalCode  string  `gorm:"type:varchar(32)"`
	DisplayName string  `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationCacheModel) TableName() string {
	return "location_cache"
}
