package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/features/attendance/clock_settings/model"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	"officer_duty_backend/internals/helpers/clockwindow"
	"officer_duty_backend/internals/helpers/dbtime"
)

/* ===================== REQUEST ===================== */

type CreateClockSettingRequest struct {
	ClockInStartTime  string `json:"clockInStartTime" validate:"required"`
	ClockOutStartTime string `json:"clockOutStartTime" validate:"required"`
	IsActive          *bool  `json:"isActive"`
}

// Parse: konversi jam (format dicek dbtime.Parse). isActive default true.
func (r *CreateClockSettingRequest) Parse() (in, out dbtime.Tod, active bool, err error) {
	if in, out, err = parsePair(r.ClockInStartTime, r.ClockOutStartTime); err != nil {
		return in, out, false, err
	}
	active = true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return in, out, active, nil
}

// UpdateClockSettingRequest: ID kosong → baris terbaru.
type UpdateClockSettingRequest struct {
	ID                *uuid.UUID `json:"id"`
	ClockInStartTime  *string    `json:"clockInStartTime" validate:"omitempty,min=1"`
	ClockOutStartTime *string    `json:"clockOutStartTime" validate:"omitempty,min=1"`
	IsActive          *bool      `json:"isActive"`
}

// ApplyTo menerapkan field yang dikirim ke m (jam divalidasi ulang sebagai pasangan).
func (r *UpdateClockSettingRequest) ApplyTo(m *model.ClockSettingModel) error {
	inRaw, outRaw := m.ClockInStartTime.String(), m.ClockOutStartTime.String()
	if r.ClockInStartTime != nil {
		inRaw = *r.ClockInStartTime
	}
	if r.ClockOutStartTime != nil {
		outRaw = *r.ClockOutStartTime
	}
	in, out, err := parsePair(inRaw, outRaw)
	if err != nil {
		return err
	}
	m.ClockInStartTime, m.ClockOutStartTime = in, out
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	m.SyncActiveFlag()
	return nil
}

func parsePair(inRaw, outRaw string) (dbtime.Tod, dbtime.Tod, error) {
	in, err := dbtime.Parse(inRaw)
	if err != nil {
		return in, dbtime.Tod{}, fiber.NewError(fiber.StatusBadRequest, "clockInStartTime: "+err.Error())
	}
	out, err := dbtime.Parse(outRaw)
	if err != nil {
		return in, out, fiber.NewError(fiber.StatusBadRequest, "clockOutStartTime: "+err.Error())
	}
	if in.Minutes() == out.Minutes() {
		return in, out, fiber.NewError(fiber.StatusBadRequest, "Clock-in start time and clock-out start time must differ")
	}
	return in, out, nil
}

/* ===================== RESPONSE ===================== */

type ClockSettingResponse struct {
	ID                uuid.UUID  `json:"id"`
	ClockInStartTime  dbtime.Tod `json:"clockInStartTime"`
	ClockOutStartTime dbtime.Tod `json:"clockOutStartTime"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func FromModel(m *model.ClockSettingModel) *ClockSettingResponse {
	if m == nil {
		return nil
	}
	return &ClockSettingResponse{
		ID:                m.ID,
		ClockInStartTime:  m.ClockInStartTime,
		ClockOutStartTime: m.ClockOutStartTime,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ActorSummary: {id, username, fullName} pembuat / pengubah.
type ActorSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName *string   `json:"fullName"`
}

type ClockSettingHistoryItem struct {
	ClockSettingResponse
	CreatedBy *ActorSummary `json:"createdBy"`
	UpdatedBy *ActorSummary `json:"updatedBy"`
}

func actor(s *userDTO.UserSummary) *ActorSummary {
	if s == nil {
		return nil
	}
	return &ActorSummary{ID: s.ID, Username: s.Username, FullName: s.FullName}
}

func ToHistory(rows []model.ClockSettingModel) []ClockSettingHistoryItem {
	out := make([]ClockSettingHistoryItem, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		out = append(out, ClockSettingHistoryItem{
			ClockSettingResponse: *FromModel(m),
			CreatedBy:            actor(userDTO.Summary(m.CreatedBy)),
			UpdatedBy:            actor(userDTO.Summary(m.UpdatedBy)),
		})
	}
	return out
}

// AvailabilityResponse: hasil evaluator + setting yang dipakai.
type AvailabilityResponse struct {
	CanClockIn    bool                  `json:"canClockIn"`
	CanClockOut   bool                  `json:"canClockOut"`
	Message       string                `json:"message"`
	State         clockwindow.State     `json:"state"`
	ClockSettings *ClockSettingResponse `json:"clockSettings"`
}

func ToAvailability(d clockwindow.Decision, m *model.ClockSettingModel) AvailabilityResponse {
	return AvailabilityResponse{
		CanClockIn:    d.CanClockIn,
		CanClockOut:   d.CanClockOut,
		Message:       d.Message,
		State:         d.State,
		ClockSettings: FromModel(m),
	}
}
