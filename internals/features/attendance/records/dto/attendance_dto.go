package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/features/attendance/records/model"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/dbtime"
)

/* ===================== FILTER ===================== */

// AttendanceFilter: query ?startDate&endDate&officerId&status (semua opsional).
type AttendanceFilter struct {
	StartDate *dbtime.Date
	EndDate   *dbtime.Date
	UserID    *uuid.UUID
	Status    *model.AttendanceStatus
}

func ParseFilter(c *fiber.Ctx) (AttendanceFilter, error) {
	var f AttendanceFilter
	var err error
	if f.StartDate, err = helper.ParseDateQuery(c, "startDate"); err != nil {
		return f, err
	}
	if f.EndDate, err = helper.ParseDateQuery(c, "endDate"); err != nil {
		return f, err
	}
	if f.UserID, err = helper.ParseUUIDQuery(c, "officerId"); err != nil {
		return f, err
	}
	if raw := c.Query("status"); raw != "" {
		st := model.AttendanceStatus(raw)
		if st != model.StatusClockedIn && st != model.StatusClockedOut {
			return f, fiber.NewError(fiber.StatusBadRequest, "status must be one of: clocked-in, clocked-out")
		}
		f.Status = &st
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, fiber.NewError(fiber.StatusBadRequest, "startDate must be before or equal to endDate")
	}
	return f, nil
}

/* ===================== RESPONSE ===================== */

type AttendanceResponse struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"userId"`
	ClockIn   time.Time              `json:"clockIn"`
	ClockOut  *time.Time             `json:"clockOut"`
	Date      dbtime.Date            `json:"date"`
	Status    model.AttendanceStatus `json:"status"`
	User      *userDTO.UserSummary   `json:"user"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		ClockIn:   m.ClockIn,
		ClockOut:  m.ClockOut,
		Date:      m.Date,
		Status:    m.Status,
		User:      userDTO.Summary(m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
