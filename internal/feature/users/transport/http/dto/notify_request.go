package dto

import (
	"time"

	authentity "college_backend/internal/feature/auth/domain/entity"
	"college_backend/internal/feature/users/domain/entity"
)

// NotifyReq represents the request body for the notify endpoint.
// A negative sentToId broadcasts to every user holding the role.
type NotifyReq struct {
	Title    string          `json:"title" binding:"required"`
	Message  string          `json:"message" binding:"required"`
	SentToID *int            `json:"sentToId" binding:"required"`
	Role     authentity.Role `json:"role" binding:"required,oneof=ADMIN TEACHER STUDENT"`
}

// NotificationResp represents a notification in API responses.
type NotificationResp struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	SentToID  uint      `json:"sentToId"`
	SentByID  uint      `json:"sentById"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationRespFromEntity maps a notification entity to its response shape.
func NotificationRespFromEntity(n *entity.Notification) NotificationResp {
	return NotificationResp{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		SentToID:  n.SentToID,
		SentByID:  n.SentByID,
		CreatedAt: n.CreatedAt,
	}
}
