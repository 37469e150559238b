package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'islamic_events' table.
type EventModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Description        string     `gorm:"type:text"`
	DateHijri          string     `gorm:"type:varchar(32);not null"`
	EstimatedGregorian *time.Time `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "islamic_events"
}
