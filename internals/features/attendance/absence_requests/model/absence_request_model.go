package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "officer_duty_backend/internals/features/users/user/model"
	"officer_duty_backend/internals/helpers/dbtime"
)

type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

type AbsenceRequestModel struct {
	ID        uuid.UUID     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uuid.UUID     `gorm:"type:char(36);not null;index" json:"userId"`
	StartDate dbtime.Date   `gorm:"type:date;not null" json:"startDate"`
	EndDate   dbtime.Date   `gorm:"type:date;not null" json:"endDate"`
	Reason    string        `gorm:"type:text;not null" json:"reason"`
	Status    AbsenceStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AbsenceRequestModel) TableName() string {
	return "absence_requests"
}

func (m *AbsenceRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = AbsencePending
	}
	return nil
}
