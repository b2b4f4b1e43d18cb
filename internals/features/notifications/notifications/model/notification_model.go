package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "officer_duty_backend/internals/features/users/user/model"
)

// Jenis notifikasi yang dikirim sistem (disimpan di Data["type"]).
const (
	TypeDutyAssigned         = "duty_assigned"
	TypeAbsenceStatusChanged = "absence_status_changed"
)

type NotificationModel struct {
	ID      uuid.UUID         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID  uuid.UUID         `gorm:"type:char(36);not null;index" json:"userId"`
	Title   string            `gorm:"size:255;not null" json:"title"`
	Message string            `gorm:"type:text;not null" json:"message"`
	IsRead  bool              `gorm:"not null;index" json:"isRead"`
	Data    datatypes.JSONMap `json:"data"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
