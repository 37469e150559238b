package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleModel is the GORM-specific struct for the 'scheduled_notifications'
// table. Azan reminders carry a device reference; broadcast rows do not.
type ScheduleModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind      string         `gorm:"type:varchar(20);not null;index:idx_sched_due,priority:1"`
	DeviceID  *uuid.UUID     `gorm:"type:uuid;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Body      string         `gorm:"type:text;not null"`
	DueAt     time.Time      `gorm:"not null;index:idx_sched_due,priority:2"`
	Sent      bool           `gorm:"not null;default:false;index:idx_sched_due,priority:3"`
	SentAt    *time.Time     `gorm:""`
	Meta      map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "scheduled_notifications"
}
