package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/features/duty/assignments/model"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	"officer_duty_backend/internals/helpers/dbtime"
)

/* ===================== REQUEST ===================== */

type CreateDutyAssignmentRequest struct {
	UserID       string  `json:"userId" validate:"required,uuid"`
	Date         string  `json:"date" validate:"required"`
	TaskLocation string  `json:"taskLocation" validate:"required,max=255"`
	Department   *string `json:"department" validate:"omitempty,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending ongoing completed cancelled"`
}

func (r *CreateDutyAssignmentRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.TaskLocation = strings.TrimSpace(r.TaskLocation)
	r.Department = trimPtr(r.Department)
	r.Status = lowerPtr(r.Status)
}

// Parsed: hasil konversi CreateDutyAssignmentRequest yang sudah lolos validator.
type Parsed struct {
	UserID       uuid.UUID
	Date         dbtime.Date
	TaskLocation string
	Department   string
	Status       model.DutyStatus
}

// Parse: hanya konversi (uuid, tanggal); field wajib & enum dicek lewat tag validate.
func (r *CreateDutyAssignmentRequest) Parse() (Parsed, error) {
	var out Parsed
	r.Normalize()
	id, err := uuid.Parse(r.UserID)
	if err != nil {
		return out, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}
	date, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return out, fiber.NewError(fiber.StatusBadRequest, "date: "+err.Error())
	}
	out = Parsed{UserID: id, Date: date, TaskLocation: r.TaskLocation, Status: model.DutyPending}
	if r.Status != nil {
		out.Status = model.DutyStatus(*r.Status)
	}
	if r.Department != nil {
		out.Department = *r.Department
	}
	return out, nil
}

// UpdateDutyAssignmentRequest: partial update
type UpdateDutyAssignmentRequest struct {
	UserID       *string `json:"userId" validate:"omitempty,uuid"`
	Date         *string `json:"date"`
	TaskLocation *string `json:"taskLocation" validate:"omitempty,min=1,max=255"`
	Department   *string `json:"department" validate:"omitempty,max=100"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending ongoing completed cancelled"`
}

func (r *UpdateDutyAssignmentRequest) Normalize() {
	if r.UserID != nil {
		v := strings.TrimSpace(*r.UserID)
		r.UserID = &v
	}
	if r.TaskLocation != nil {
		v := strings.TrimSpace(*r.TaskLocation)
		r.TaskLocation = &v
	}
	if r.Department != nil {
		v := strings.TrimSpace(*r.Department)
		r.Department = &v
	}
	r.Status = lowerPtr(r.Status)
}

// NewUserID: nil kalau tidak dikirim.
func (r *UpdateDutyAssignmentRequest) NewUserID() (*uuid.UUID, error) {
	if r.UserID == nil || *r.UserID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*r.UserID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}
	return &id, nil
}

// ApplyTo menerapkan field sederhana (bukan assignee) ke m.
func (r *UpdateDutyAssignmentRequest) ApplyTo(m *model.DutyAssignmentModel) error {
	if r.Date != nil {
		d, err := dbtime.ParseDate(*r.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date: "+err.Error())
		}
		m.Date = d
	}
	if r.TaskLocation != nil {
		m.TaskLocation = *r.TaskLocation
	}
	if r.Department != nil {
		m.Department = *r.Department
	}
	if r.Status != nil {
		m.Status = model.DutyStatus(*r.Status)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func lowerPtr(s *string) *string {
	s = trimPtr(s)
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

/* ===================== RESPONSE ===================== */

type DutyAssignmentResponse struct {
	ID           uuid.UUID            `json:"id"`
	Date         dbtime.Date          `json:"date"`
	OfficerName  string               `json:"officerName"`
	Department   string               `json:"department"`
	TaskLocation string               `json:"taskLocation"`
	Status       model.DutyStatus     `json:"status"`
	UserID       uuid.UUID            `json:"userId"`
	User         *userDTO.UserSummary `json:"user"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func FromModel(m *model.DutyAssignmentModel) DutyAssignmentResponse {
	return DutyAssignmentResponse{
		ID:           m.ID,
		Date:         m.Date,
		OfficerName:  m.OfficerName,
		Department:   m.Department,
		TaskLocation: m.TaskLocation,
		Status:       m.Status,
		UserID:       m.UserID,
		User:         userDTO.Summary(m.User),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromModels(rows []model.DutyAssignmentModel) []DutyAssignmentResponse {
	out := make([]DutyAssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
