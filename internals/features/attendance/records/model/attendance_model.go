package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "officer_duty_backend/internals/features/users/user/model"
	"officer_duty_backend/internals/helpers/dbtime"
)

type AttendanceStatus string

const (
	StatusClockedIn  AttendanceStatus = "clocked-in"
	StatusClockedOut AttendanceStatus = "clocked-out"
)

// AttendanceModel: satu sesi kehadiran. OpenFlag = true selama clocked-in dan
// NULL setelah clock-out, sehingga unique (user_id, date, open_flag) membatasi
// satu record terbuka per principal per tanggal.
type AttendanceModel struct {
	ID       uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	UserID   uuid.UUID        `gorm:"type:char(36);not null;index;uniqueIndex:uq_attendance_open,priority:1" json:"userId"`
	ClockIn  time.Time        `gorm:"not null" json:"clockIn"`
	ClockOut *time.Time       `json:"clockOut"`
	Date     dbtime.Date      `gorm:"type:date;not null;index;uniqueIndex:uq_attendance_open,priority:2" json:"date"`
	Status   AttendanceStatus `gorm:"type:varchar(20);not null;default:'clocked-in';index" json:"status"`
	OpenFlag *bool            `gorm:"uniqueIndex:uq_attendance_open,priority:3" json:"-"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusClockedIn
	}
	if m.Status == StatusClockedIn {
		t := true
		m.OpenFlag = &t
	}
	return nil
}
