package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "officer_duty_backend/internals/features/users/user/model"
	"officer_duty_backend/internals/helpers/clockwindow"
	"officer_duty_backend/internals/helpers/dbtime"
)

// ClockSettingModel: jendela clock-in/clock-out. Paling banyak satu baris aktif;
// dijaga unique index pada ActiveFlag (true saat aktif, NULL saat tidak).
type ClockSettingModel struct {
	ID                uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ClockInStartTime  dbtime.Tod `gorm:"type:time;not null" json:"clockInStartTime"`
	ClockOutStartTime dbtime.Tod `gorm:"type:time;not null" json:"clockOutStartTime"`
	IsActive          bool       `gorm:"not null" json:"isActive"`
	ActiveFlag        *bool      `gorm:"uniqueIndex:uq_clock_settings_active" json:"-"`

	CreatedByID *uuid.UUID           `gorm:"type:char(36);index" json:"createdById"`
	UpdatedByID *uuid.UUID           `gorm:"type:char(36);index" json:"updatedById"`
	CreatedBy   *userModel.UserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy   *userModel.UserModel `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ClockSettingModel) TableName() string {
	return "clock_settings"
}

func (m *ClockSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.SyncActiveFlag()
	return nil
}

// SyncActiveFlag menyelaraskan ActiveFlag dengan IsActive.
func (m *ClockSettingModel) SyncActiveFlag() {
	if m.IsActive {
		t := true
		m.ActiveFlag = &t
		return
	}
	m.ActiveFlag = nil
}

// Window: potongan yang dibutuhkan evaluator.
func (m *ClockSettingModel) Window() *clockwindow.Window {
	if m == nil {
		return nil
	}
	return &clockwindow.Window{
		ClockInStart:  m.ClockInStartTime,
		ClockOutStart: m.ClockOutStartTime,
		IsActive:      m.IsActive,
	}
}
