package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type NotificationResponse struct {
	ID                   uint                    `json:"id"`
	Title                string                  `json:"title"`
	Message              string                  `json:"message"`
	Type                 models.NotificationType `json:"type"`
	IsRead               bool                    `json:"is_read"`
	RelatedApplicationID *uint                   `json:"related_application_id,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                   n.ID,
		Title:                n.Title,
		Message:              n.Message,
		Type:                 n.Type,
		IsRead:               n.IsRead,
		RelatedApplicationID: n.RelatedApplicationID,
		CreatedAt:            n.CreatedAt,
	}
}
