package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
	absenceModel "officer_duty_backend/internals/features/attendance/absence_requests/model"
	attendanceModel "officer_duty_backend/internals/features/attendance/records/model"
	"officer_duty_backend/internals/features/dashboard/stats/dto"
	dutyModel "officer_duty_backend/internals/features/duty/assignments/model"
	userModel "officer_duty_backend/internals/features/users/user/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	"officer_duty_backend/internals/helpers/dbtime"
)

const MsgNoDepartment = "Supervisor must have a department assigned"

// LateThreshold: clock-in setelah jam ini (waktu lokal) dihitung terlambat.
var LateThreshold = dbtime.MustParse("09:00")

type Service struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: dbtime.SystemClock}
}

// officerFilter membatasi query attendance/absence ke himpunan officer tertentu.
type officerFilter func(q *gorm.DB) *gorm.DB

func allUsers(q *gorm.DB) *gorm.DB { return q }

func (s *Service) counts(db *gorm.DB, scope officerFilter) (dto.DashboardStats, error) {
	var out dto.DashboardStats
	now := s.Now()
	today := dbtime.Today(now)
	late := dbtime.AtLocal(now, LateThreshold)

	if err := scope(db.Model(&attendanceModel.AttendanceModel{})).
		Where("date = ?", today).
		Distinct("user_id").
		Count(&out.PresentTodayCount).Error; err != nil {
		return out, err
	}
	if err := scope(db.Model(&attendanceModel.AttendanceModel{})).
		Where("date = ? AND clock_in > ?", today, late).
		Distinct("user_id").
		Count(&out.LateCheckInCount).Error; err != nil {
		return out, err
	}
	if err := scope(db.Model(&absenceModel.AbsenceRequestModel{})).
		Where("status = ?", absenceModel.AbsencePending).
		Count(&out.AbsenceRequestCount).Error; err != nil {
		return out, err
	}
	return out, nil
}

// Stats: seluruh organisasi.
func (s *Service) Stats(ctx context.Context) (dto.DashboardStats, error) {
	out, err := s.counts(s.DB.WithContext(ctx), allUsers)
	if err != nil {
		return out, helper.MapDBError(err, "")
	}
	return out, nil
}

// SupervisorStats: dibatasi ke officer di departemen supervisor.
func (s *Service) SupervisorStats(ctx context.Context, p authz.Principal) (dto.SupervisorDashboardStats, error) {
	var out dto.SupervisorDashboardStats
	if !p.HasDepartment() {
		return out, fiber.NewError(fiber.StatusForbidden, MsgNoDepartment)
	}
	db := s.DB.WithContext(ctx)

	officerIDs := db.Model(&userModel.UserModel{}).
		Select("id").
		Where("role = ? AND department = ?", constants.RoleOfficer, p.Department)

	if err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND department = ?", constants.RoleOfficer, p.Department).
		Count(&out.TotalOfficersCount).Error; err != nil {
		return out, helper.MapDBError(err, "")
	}
	// duty dihitung per kolom department, tidak bergantung officer yang tersisa
	if err := db.Model(&dutyModel.DutyAssignmentModel{}).
		Where("department = ? AND status IN ?", p.Department, dutyModel.ActiveDutyStatuses).
		Count(&out.ActiveDutyAssignmentsCount).Error; err != nil {
		return out, helper.MapDBError(err, "")
	}
	if out.TotalOfficersCount == 0 {
		return out, nil
	}

	base, err := s.counts(db, func(q *gorm.DB) *gorm.DB {
		return q.Where("user_id IN (?)", officerIDs)
	})
	if err != nil {
		return out, helper.MapDBError(err, "")
	}
	out.DashboardStats = base

	log.Printf("[INFO] dashboard supervisor %s (%s): present=%d late=%d total=%d",
		p.Username, p.Department, out.PresentTodayCount, out.LateCheckInCount, out.TotalOfficersCount)
	return out, nil
}
