package dto

import (
	"encoding/json"
	"time"

	"talenthub_backend/internal/models"
)

type ListNotificationsRequest struct {
	Pagination
	UnreadOnly bool `form:"unread_only"`
}

type BroadcastNotificationRequest struct {
	Title   string          `json:"title" validate:"required,min=1,max=200"`
	Message string          `json:"message" validate:"required,max=5000"`
	Role    models.UserRole `json:"role,omitempty" validate:"omitempty,is-user-role"`
}

type NotificationResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data,omitempty"`
	IsRead      bool            `json:"is_read"`
	IsBroadcast bool            `json:"is_broadcast"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewNotificationResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          notification.ID,
		Type:        notification.Type,
		Title:       notification.Title,
		Message:     notification.Message,
		Data:        json.RawMessage(notification.Data),
		IsRead:      notification.IsRead,
		IsBroadcast: notification.IsBroadcast,
		CreatedAt:   notification.CreatedAt,
	}
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
