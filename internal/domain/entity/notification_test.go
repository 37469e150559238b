package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduledNotification_MetaStrings(t *testing.T) {
	notification := &ScheduledNotification{
		Meta: map[string]any{
			"prayer_name":           "Fajr",
			"notify_before_minutes": 10,
			"exact":                 true,
		},
	}

	data := notification.MetaStrings()
	assert.Equal(t, map[string]string{
		"prayer_name":           "Fajr",
		"notify_before_minutes": "10",
		"exact":                 "true",
	}, data)
}

func TestScheduledNotification_MetaStrings_EmptyMeta(t *testing.T) {
	notification := &ScheduledNotification{}

	data := notification.MetaStrings()
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestNotificationKind_Topic(t *testing.T) {
	assert.Equal(t, "AZAN", KindAzan.Topic())
	assert.Equal(t, "EVENT", KindEvent.Topic())
	assert.Equal(t, "GENERAL", KindGeneral.Topic())
}
