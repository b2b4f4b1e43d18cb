package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/features/attendance/absence_requests/model"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	"officer_duty_backend/internals/helpers/dbtime"
)

const MsgDateOrder = "Start date must be before or equal to end date"

/* ===================== REQUEST ===================== */

type CreateAbsenceRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Reason    string `json:"reason" validate:"required,max=1000"`
}

func (r *CreateAbsenceRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Reason = strings.TrimSpace(r.Reason)
}

// ToModel: parsing tanggal & urutan (startDate <= endDate); field wajib lewat validator.
func (r *CreateAbsenceRequest) ToModel(userID uuid.UUID) (*model.AbsenceRequestModel, error) {
	r.Normalize()
	start, err := dbtime.ParseDate(r.StartDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "startDate: "+err.Error())
	}
	end, err := dbtime.ParseDate(r.EndDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "endDate: "+err.Error())
	}
	if start.After(end) {
		return nil, fiber.NewError(fiber.StatusBadRequest, MsgDateOrder)
	}
	return &model.AbsenceRequestModel{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
		Status:    model.AbsencePending,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (r *UpdateStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

/* ===================== RESPONSE ===================== */

type AbsenceRequestResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	StartDate dbtime.Date          `json:"startDate"`
	EndDate   dbtime.Date          `json:"endDate"`
	Reason    string               `json:"reason"`
	Status    model.AbsenceStatus  `json:"status"`
	User      *userDTO.UserSummary `json:"user"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromModel(m *model.AbsenceRequestModel) AbsenceRequestResponse {
	return AbsenceRequestResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Reason:    m.Reason,
		Status:    m.Status,
		User:      userDTO.Summary(m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.AbsenceRequestModel) []AbsenceRequestResponse {
	out := make([]AbsenceRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
