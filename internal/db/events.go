package db

import (
	"encoding/json"

	"gorm.io/gorm"
)

// RecordEvent appends an audit row with a JSON payload. Audit failures are
// returned but callers generally just log them; the edit itself has already
// committed.
func RecordEvent(conn *gorm.DB, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := Event{
		Type:      eventType,
		Payload:   raw,
		CreatedAt: Now(),
	}
	return conn.Create(&event).Error
}

// RecentEvents lists the newest audit rows, most recent first.
func RecentEvents(conn *gorm.DB, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	var events []Event
	err := conn.Order("id desc").Limit(limit).Find(&events).Error
	return events, err
}
