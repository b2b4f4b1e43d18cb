package dto

import (
	"time"

	"github.com/google/uuid"

	"officer_duty_backend/internals/features/notifications/notifications/model"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"isRead"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

func FromModel(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.ID,
		Title:     m.Title,
		Message:   m.Message,
		IsRead:    m.IsRead,
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(rows []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
