package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/features/duty/assignments/dto"
	"officer_duty_backend/internals/features/duty/assignments/model"
	notificationModel "officer_duty_backend/internals/features/notifications/notifications/model"
	notificationService "officer_duty_backend/internals/features/notifications/notifications/service"
	userModel "officer_duty_backend/internals/features/users/user/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

const (
	MsgNotFound       = "Duty assignment not found"
	MsgUserNotFound   = "User not found"
	MsgMustBeOfficer  = "User must be an officer"
	MsgAccessDenied   = "Access denied to this resource"
	notifyTitleAssign = "New duty assignment"
)

var scopeCols = authz.ScopeColumns{
	Department: "department = ?",
	Owner:      "user_id",
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

/* ===================== READ ===================== */

// List: ter-scope; userID opsional (?userId=).
func (s *Service) List(ctx context.Context, p authz.Principal, userID *uuid.UUID) ([]model.DutyAssignmentModel, error) {
	q := authz.ScopeFor(p).Apply(s.DB.WithContext(ctx).Preload("User"), scopeCols)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var rows []model.DutyAssignmentModel
	err := q.Order("date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, helper.MapDBError(err, "")
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]model.DutyAssignmentModel, error) {
	var rows []model.DutyAssignmentModel
	err := s.DB.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("date DESC").Order("created_at DESC").
		Find(&rows).Error
	return rows, helper.MapDBError(err, "")
}

// Get: di luar scope diperlakukan sama dengan tidak ada (404).
func (s *Service) Get(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.DutyAssignmentModel, error) {
	return s.findScoped(s.DB.WithContext(ctx).Preload("User"), p, id)
}

func (s *Service) findScoped(db *gorm.DB, p authz.Principal, id uuid.UUID) (*model.DutyAssignmentModel, error) {
	var m model.DutyAssignmentModel
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgNotFound)
		}
		return nil, err
	}
	if !authz.ScopeFor(p).Allows(m.Department, m.UserID) {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgNotFound)
	}
	return &m, nil
}

// loadOfficer: assignee harus ada (404) dan ber-role officer (400).
func loadOfficer(tx *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := tx.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
		}
		return nil, err
	}
	if u.Role != constants.RoleOfficer {
		return nil, fiber.NewError(fiber.StatusBadRequest, MsgMustBeOfficer)
	}
	return &u, nil
}

func notifyAssigned(tx *gorm.DB, m *model.DutyAssignmentModel) error {
	_, err := notificationService.Notify(tx, m.UserID, notifyTitleAssign,
		fmt.Sprintf("You have been assigned to %s on %s.", m.TaskLocation, m.Date),
		map[string]any{
			"type":             notificationModel.TypeDutyAssigned,
			"dutyAssignmentId": m.ID.String(),
			"date":             m.Date.String(),
			"taskLocation":     m.TaskLocation,
		})
	return err
}

/* ===================== WRITE ===================== */

// Create: officerName & department diambil dari assignee bila tidak dikirim;
// supervisor hanya boleh membuat untuk departemennya sendiri.
func (s *Service) Create(ctx context.Context, p authz.Principal, req dto.CreateDutyAssignmentRequest) (*model.DutyAssignmentModel, error) {
	in, err := req.Parse()
	if err != nil {
		return nil, err
	}

	m := &model.DutyAssignmentModel{
		Date:         in.Date,
		TaskLocation: in.TaskLocation,
		Status:       in.Status,
		UserID:       in.UserID,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		officer, err := loadOfficer(tx, in.UserID)
		if err != nil {
			return err
		}
		m.OfficerName = officer.DisplayName()
		m.Department = in.Department
		if m.Department == "" {
			m.Department = officer.DepartmentName()
		}
		if !authz.CanAccess(p, m.Department) {
			return fiber.NewError(fiber.StatusForbidden, MsgAccessDenied)
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return notifyAssigned(tx, m)
	})
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}

	log.Printf("[INFO] duty assignment %s dibuat untuk %s oleh %s", m.ID, m.OfficerName, p.Username)
	return s.reload(ctx, m.ID)
}

// Update: scope dicek sebelum (404) dan sesudah perubahan departemen (403).
func (s *Service) Update(ctx context.Context, p authz.Principal, id uuid.UUID, req dto.UpdateDutyAssignmentRequest) (*model.DutyAssignmentModel, error) {
	newUserID, err := req.NewUserID()
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.findScoped(tx, p, id)
		if err != nil {
			return err
		}

		reassigned := newUserID != nil && *newUserID != m.UserID
		if reassigned {
			officer, err := loadOfficer(tx, *newUserID)
			if err != nil {
				return err
			}
			m.UserID = officer.ID
			m.OfficerName = officer.DisplayName()
			if req.Department == nil && officer.DepartmentName() != "" {
				m.Department = officer.DepartmentName()
			}
		}
		if err := req.ApplyTo(m); err != nil {
			return err
		}
		if !authz.CanAccess(p, m.Department) {
			return fiber.NewError(fiber.StatusForbidden, MsgAccessDenied)
		}

		if err := tx.Model(m).
			Select("date", "officer_name", "department", "task_location", "status", "user_id", "updated_at").
			Updates(m).Error; err != nil {
			return err
		}
		if reassigned {
			return notifyAssigned(tx, m)
		}
		return nil
	})
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return s.reload(ctx, id)
}

func (s *Service) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.findScoped(tx, p, id)
		if err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	return helper.MapDBError(err, "")
}

func (s *Service) reload(ctx context.Context, id uuid.UUID) (*model.DutyAssignmentModel, error) {
	var m model.DutyAssignmentModel
	if err := s.DB.WithContext(ctx).Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return &m, nil
}
