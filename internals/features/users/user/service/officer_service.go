package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
	absenceModel "officer_duty_backend/internals/features/attendance/absence_requests/model"
	attendanceModel "officer_duty_backend/internals/features/attendance/records/model"
	dutyModel "officer_duty_backend/internals/features/duty/assignments/model"
	notificationModel "officer_duty_backend/internals/features/notifications/notifications/model"
	authHelper "officer_duty_backend/internals/features/users/auth/helper"
	authRepo "officer_duty_backend/internals/features/users/auth/repository"
	"officer_duty_backend/internals/features/users/user/dto"
	"officer_duty_backend/internals/features/users/user/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

const (
	MsgOfficerNotFound     = "Officer not found"
	MsgUserExists          = "User already exists"
	MsgNoDepartment        = "Supervisor must have a department assigned"
	MsgCannotMoveOfficer   = "Supervisors cannot move officers to another department"
	MsgPasswordHashFailure = "Password hashing failed"
)

// Roster officer: department dari kolom users.department, owner = id officer itu sendiri.
var scopeCols = authz.ScopeColumns{
	Department: "department = ?",
	Owner:      "id",
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func officers(db *gorm.DB) *gorm.DB {
	return db.Model(&model.UserModel{}).Where("role = ?", constants.RoleOfficer)
}

/* ===================== READ ===================== */

func (s *Service) List(ctx context.Context, p authz.Principal) ([]model.UserModel, error) {
	var rows []model.UserModel
	err := authz.ScopeFor(p).Apply(officers(s.DB.WithContext(ctx)), scopeCols).
		Order("username ASC").
		Find(&rows).Error
	return rows, helper.MapDBError(err, "")
}

func (s *Service) Get(ctx context.Context, p authz.Principal, id uuid.UUID) (*model.UserModel, error) {
	return findScoped(s.DB.WithContext(ctx), p, id)
}

func findScoped(db *gorm.DB, p authz.Principal, id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	if err := officers(db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgOfficerNotFound)
		}
		return nil, err
	}
	if !authz.ScopeFor(p).Allows(m.DepartmentName(), m.ID) {
		return nil, fiber.NewError(fiber.StatusNotFound, MsgOfficerNotFound)
	}
	return &m, nil
}

/* ===================== WRITE ===================== */

// Create: role selalu officer; supervisor hanya untuk departemennya sendiri.
func (s *Service) Create(ctx context.Context, p authz.Principal, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	req.Role = string(constants.RoleOfficer)
	if p.Role == constants.RoleSupervisor {
		if !p.HasDepartment() {
			return nil, fiber.NewError(fiber.StatusForbidden, MsgNoDepartment)
		}
		dept := p.Department
		req.Department = &dept
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, MsgPasswordHashFailure)
	}
	m, err := req.ToModel(hash)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := authRepo.IsUsernameTaken(tx, m.Username)
		if err != nil {
			return err
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, MsgUserExists)
		}
		return authRepo.CreateUser(tx, m)
	})
	if err != nil {
		return nil, helper.MapDBError(err, MsgUserExists)
	}

	log.Printf("[INFO] officer %s dibuat oleh %s", m.Username, p.Username)
	return m, nil
}

// Update: supervisor tidak boleh memindahkan officer keluar departemennya.
func (s *Service) Update(ctx context.Context, p authz.Principal, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	req.Normalize()

	var m *model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		m, err = findScoped(tx, p, id)
		if err != nil {
			return err
		}
		if req.Department != nil && !authz.CanAccess(p, *req.Department) {
			return fiber.NewError(fiber.StatusForbidden, MsgCannotMoveOfficer)
		}

		cols := []string{"updated_at"}
		if req.FullName != nil {
			m.FullName = req.FullName
			cols = append(cols, "full_name")
		}
		if req.Department != nil {
			m.Department = req.Department
			cols = append(cols, "department")
		}
		if req.Password != nil && *req.Password != "" {
			hash, err := authHelper.HashPassword(*req.Password)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, MsgPasswordHashFailure)
			}
			m.Password = hash
			cols = append(cols, "password")
		}
		return tx.Model(m).Select(cols).Updates(m).Error
	})
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return m, nil
}

// Delete: hard delete beserta seluruh data milik officer dalam satu transaksi.
func (s *Service) Delete(ctx context.Context, p authz.Principal, id uuid.UUID) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findScoped(tx, p, id)
		if err != nil {
			return err
		}
		owned := []any{
			&attendanceModel.AttendanceModel{},
			&absenceModel.AbsenceRequestModel{},
			&dutyModel.DutyAssignmentModel{},
			&notificationModel.NotificationModel{},
		}
		for _, table := range owned {
			if err := tx.Where("user_id = ?", m.ID).Delete(table).Error; err != nil {
				return err
			}
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.MapDBError(err, "")
	}
	log.Printf("[INFO] officer %s dihapus oleh %s", id, p.Username)
	return nil
}
