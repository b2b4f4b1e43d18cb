package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clockService "officer_duty_backend/internals/features/attendance/clock_settings/service"
	"officer_duty_backend/internals/features/attendance/records/dto"
	"officer_duty_backend/internals/features/attendance/records/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/clockwindow"
	"officer_duty_backend/internals/helpers/dbtime"
)

const (
	MsgAlreadyCheckedIn = "You have already checked in today. Please check out first."
	MsgNoCheckIn        = "No check-in record found for today. Please check in first."

	exportHardCap = 10000
)

type Service struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: dbtime.SystemClock}
}

/* ===================== CHECK-IN / CHECK-OUT ===================== */

// openShiftDates: tanggal yang mungkin memegang record terbuka milik shift
// sekarang. Jendela lewat tengah malam ikut membawa tanggal kemarin.
func openShiftDates(today dbtime.Date, w *clockwindow.Window) []dbtime.Date {
	dates := []dbtime.Date{today}
	if w.SpansMidnight() {
		dates = append(dates, dbtime.DateOf(today.AddDate(0, 0, -1)))
	}
	return dates
}

// CheckIn membuka record baru untuk hari ini. Jendela jam dan invariant
// "satu record terbuka per shift" dicek di transaksi yang sama dengan insert;
// unique index uq_attendance_open menangkap request yang balapan.
func (s *Service) CheckIn(ctx context.Context, userID uuid.UUID) (*model.AttendanceModel, error) {
	now := s.Now()
	today := dbtime.Today(now)
	rec := &model.AttendanceModel{
		UserID:  userID,
		ClockIn: now.UTC(),
		Date:    today,
		Status:  model.StatusClockedIn,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, cfg, err := clockService.Evaluate(tx, dbtime.MinuteOfDay(now))
		if err != nil {
			return err
		}
		if !d.CanClockIn {
			return fiber.NewError(fiber.StatusBadRequest, clockwindow.ClockInDenied(cfg.Window(), d))
		}

		var open int64
		if err := tx.Model(&model.AttendanceModel{}).
			Where("user_id = ? AND status = ? AND date IN ?", userID, model.StatusClockedIn, openShiftDates(today, cfg.Window())).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return fiber.NewError(fiber.StatusBadRequest, MsgAlreadyCheckedIn)
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, helper.MapDBError(err, MsgAlreadyCheckedIn)
	}

	log.Printf("[INFO] check-in %s tanggal %s", userID, today)
	return s.reload(ctx, rec.ID)
}

// CheckOut menutup record terbuka shift sekarang (lihat openShiftDates).
func (s *Service) CheckOut(ctx context.Context, userID uuid.UUID) (*model.AttendanceModel, error) {
	now := s.Now()
	today := dbtime.Today(now)

	var rec model.AttendanceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, cfg, err := clockService.Evaluate(tx, dbtime.MinuteOfDay(now))
		if err != nil {
			return err
		}
		if !d.CanClockOut {
			return fiber.NewError(fiber.StatusBadRequest, clockwindow.ClockOutDenied(cfg.Window(), d))
		}

		err = tx.Where("user_id = ? AND status = ? AND date IN ?", userID, model.StatusClockedIn, openShiftDates(today, cfg.Window())).
			Order("date DESC").
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, MsgNoCheckIn)
		}
		if err != nil {
			return err
		}

		res := tx.Model(&model.AttendanceModel{}).
			Where("id = ? AND status = ?", rec.ID, model.StatusClockedIn).
			Updates(map[string]any{
				"clock_out": now.UTC(),
				"status":    model.StatusClockedOut,
				"open_flag": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, MsgNoCheckIn)
		}
		return nil
	})
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}

	log.Printf("[INFO] check-out %s record %s", userID, rec.ID)
	return s.reload(ctx, rec.ID)
}

func (s *Service) reload(ctx context.Context, id uuid.UUID) (*model.AttendanceModel, error) {
	var m model.AttendanceModel
	if err := s.DB.WithContext(ctx).Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return &m, nil
}

/* ===================== LIST ===================== */

func applyFilter(q *gorm.DB, f dto.AttendanceFilter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	return q
}

// ListMine: riwayat milik sendiri, terbaru dulu.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID, f dto.AttendanceFilter) ([]model.AttendanceModel, error) {
	f.UserID = &userID
	var rows []model.AttendanceModel
	err := applyFilter(s.DB.WithContext(ctx).Preload("User"), f).
		Order("date DESC").Order("clock_in DESC").
		Find(&rows).Error
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return rows, nil
}

// List: semua record (admin) dengan paging.
func (s *Service) List(ctx context.Context, f dto.AttendanceFilter, p helper.Paging) ([]model.AttendanceModel, int64, error) {
	db := s.DB.WithContext(ctx)

	var total int64
	if err := applyFilter(db.Model(&model.AttendanceModel{}), f).Count(&total).Error; err != nil {
		return nil, 0, helper.MapDBError(err, "")
	}
	var rows []model.AttendanceModel
	err := applyFilter(db.Preload("User"), f).
		Order("date DESC").Order("clock_in DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, helper.MapDBError(err, "")
	}
	return rows, total, nil
}

// ListForExport: filter sama dengan List, tanpa paging (dibatasi exportHardCap).
func (s *Service) ListForExport(ctx context.Context, f dto.AttendanceFilter) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := applyFilter(s.DB.WithContext(ctx).Preload("User"), f).
		Order("date DESC").Order("clock_in DESC").
		Limit(exportHardCap).
		Find(&rows).Error
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return rows, nil
}
