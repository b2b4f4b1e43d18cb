package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "officer_duty_backend/internals/features/users/user/model"
	"officer_duty_backend/internals/helpers/dbtime"
)

type DutyStatus string

const (
	DutyPending   DutyStatus = "pending"
	DutyOngoing   DutyStatus = "ongoing"
	DutyCompleted DutyStatus = "completed"
	DutyCancelled DutyStatus = "cancelled"
)

// ActiveDutyStatuses: status yang dihitung sebagai tugas aktif di dashboard.
var ActiveDutyStatuses = []DutyStatus{DutyPending, DutyOngoing}

type DutyAssignmentModel struct {
	ID           uuid.UUID   `gorm:"type:char(36);primaryKey" json:"id"`
	Date         dbtime.Date `gorm:"type:date;not null;index" json:"date"`
	OfficerName  string      `gorm:"size:255;not null" json:"officerName"`
	Department   string      `gorm:"size:100;not null;default:'';index" json:"department"`
	TaskLocation string      `gorm:"size:255;not null" json:"taskLocation"`
	Status       DutyStatus  `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	UserID uuid.UUID            `gorm:"type:char(36);not null;index" json:"userId"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DutyAssignmentModel) TableName() string {
	return "duty_assignments"
}

func (m *DutyAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = DutyPending
	}
	return nil
}
