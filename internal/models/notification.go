package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification addresses one recipient directly, or many via the recipients
// pivot when IsBroadcast is set.
type Notification struct {
	BaseModel
	UserID      *string        `gorm:"index" json:"user_id,omitempty"`
	Type        string         `gorm:"not null" json:"type"` // "application_status", "new_candidate", "broadcast", ...
	Title       string         `gorm:"not null" json:"title"`
	Message     string         `json:"message"`
	Data        datatypes.JSON `json:"data,omitempty"`
	IsRead      bool           `gorm:"default:false" json:"is_read"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`
	IsBroadcast bool           `gorm:"default:false" json:"is_broadcast"`

	Recipients []NotificationRecipient `gorm:"foreignKey:NotificationID" json:"-"`
}

// NotificationRecipient fans a broadcast out to its users, tracking per-user
// read state.
type NotificationRecipient struct {
	NotificationID string     `gorm:"primaryKey" json:"notification_id"`
	UserID         string     `gorm:"primaryKey" json:"user_id"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

func (NotificationRecipient) TableName() string {
	return "notification_recipients"
}
