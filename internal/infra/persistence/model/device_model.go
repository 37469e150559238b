// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table. One row
// per registered app installation, keyed by the FCM token.
type DeviceModel struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token                     string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeviceID                  string          `gorm:"type:varchar(255)"`
	Platform                  string          `gorm:"type:varchar(50)"`
	Latitude                  *float64        `gorm:"type:double precision"`
	Longitude                 *float64        `gorm:"type:double precision"`
	Timezone                  string          `gorm:"type:varchar(64)"`
	EnablePrayerNotifications bool            `gorm:"not null;default:true"`
	EnableEventNotifications  bool            `gorm:"not null;default:true"`
	NotifyBeforeMinutes       int             `gorm:"not null;default:5"`
	EnabledPrayers            map[string]bool `gorm:"type:jsonb;serializer:json"`
	LastActiveAt              time.Time       `gorm:"not null;index"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
