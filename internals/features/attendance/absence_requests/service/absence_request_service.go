package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/absence_requests/dto"
	"officer_duty_backend/internals/features/attendance/absence_requests/model"
	notificationModel "officer_duty_backend/internals/features/notifications/notifications/model"
	notificationService "officer_duty_backend/internals/features/notifications/notifications/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

const (
	MsgNotFound     = "Absence request not found"
	MsgAccessDenied = "Access denied to this resource"
)

// Scope absence request mengikuti departemen officer pemiliknya.
var scopeCols = authz.ScopeColumns{
	Department: "user_id IN (SELECT id FROM users WHERE department = ?)",
	Owner:      "user_id",
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req dto.CreateAbsenceRequest) (*model.AbsenceRequestModel, error) {
	m, err := req.ToModel(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return s.reload(ctx, m.ID)
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]model.AbsenceRequestModel, error) {
	var rows []model.AbsenceRequestModel
	err := s.DB.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, helper.MapDBError(err, "")
}

// List: admin semua, supervisor departemennya sendiri; ?status opsional.
func (s *Service) List(ctx context.Context, p authz.Principal, status *model.AbsenceStatus) ([]model.AbsenceRequestModel, error) {
	q := authz.ScopeFor(p).Apply(s.DB.WithContext(ctx).Preload("User"), scopeCols)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var rows []model.AbsenceRequestModel
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, helper.MapDBError(err, "")
}

// UpdateStatus: review approve/reject, req sudah lolos validator di controller.
// Scope dicek terhadap departemen officer pemilik request; notifikasi dikirim
// di transaksi yang sama.
func (s *Service) UpdateStatus(ctx context.Context, p authz.Principal, id uuid.UUID, req dto.UpdateStatusRequest) (*model.AbsenceRequestModel, error) {
	req.Normalize()
	status := model.AbsenceStatus(req.Status)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.AbsenceRequestModel
		if err := tx.Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, MsgNotFound)
			}
			return err
		}
		dept := ""
		if m.User != nil {
			dept = m.User.DepartmentName()
		}
		if !authz.ScopeFor(p).Allows(dept, m.UserID) {
			return fiber.NewError(fiber.StatusForbidden, MsgAccessDenied)
		}

		if err := tx.Model(&m).Update("status", status).Error; err != nil {
			return err
		}
		_, err := notificationService.Notify(tx, m.UserID,
			"Absence request "+string(status),
			fmt.Sprintf("Your absence request for %s to %s has been %s.", m.StartDate, m.EndDate, status),
			map[string]any{
				"type":             notificationModel.TypeAbsenceStatusChanged,
				"absenceRequestId": m.ID.String(),
				"status":           string(status),
				"reviewedBy":       p.ID.String(),
			})
		return err
	})
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}

	log.Printf("[INFO] absence request %s → %s oleh %s", id, status, p.Username)
	return s.reload(ctx, id)
}

func (s *Service) reload(ctx context.Context, id uuid.UUID) (*model.AbsenceRequestModel, error) {
	var m model.AbsenceRequestModel
	if err := s.DB.WithContext(ctx).Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return &m, nil
}
