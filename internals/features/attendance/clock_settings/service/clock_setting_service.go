package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/clock_settings/dto"
	"officer_duty_backend/internals/features/attendance/clock_settings/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/clockwindow"
	"officer_duty_backend/internals/helpers/dbtime"
)

const (
	MsgNotFoundForUpdate = "Clock settings not found. Please create settings first."
	msgConflict          = "Another clock setting is already active"
)

// Current: baris aktif; kalau tidak ada, baris terbaru (berarti disabled);
// nil kalau tabel kosong (not configured).
func Current(db *gorm.DB) (*model.ClockSettingModel, error) {
	var m model.ClockSettingModel
	err := db.Where("is_active = ?", true).Order("created_at DESC").First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = db.Order("created_at DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Evaluate menjalankan evaluator terhadap setting saat ini pada waktu now.
func Evaluate(db *gorm.DB, nowMinute int) (clockwindow.Decision, *model.ClockSettingModel, error) {
	m, err := Current(db)
	if err != nil {
		return clockwindow.Decision{}, nil, err
	}
	return clockwindow.Evaluate(m.Window(), nowMinute), m, nil
}

type Service struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: dbtime.SystemClock}
}

func (s *Service) Current(ctx context.Context) (*model.ClockSettingModel, error) {
	m, err := Current(s.DB.WithContext(ctx))
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return m, nil
}

func (s *Service) Availability(ctx context.Context) (dto.AvailabilityResponse, error) {
	d, m, err := Evaluate(s.DB.WithContext(ctx), dbtime.MinuteOfDay(s.Now()))
	if err != nil {
		return dto.AvailabilityResponse{}, helper.MapDBError(err, "")
	}
	return dto.ToAvailability(d, m), nil
}

func (s *Service) History(ctx context.Context) ([]model.ClockSettingModel, error) {
	var rows []model.ClockSettingModel
	err := s.DB.WithContext(ctx).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, helper.MapDBError(err, "")
	}
	return rows, nil
}

// deactivateAll mematikan semua baris aktif selain exceptID.
func deactivateAll(tx *gorm.DB, exceptID uuid.UUID) error {
	q := tx.Model(&model.ClockSettingModel{}).Where("is_active = ? OR active_flag IS NOT NULL", true)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Updates(map[string]any{"is_active": false, "active_flag": nil}).Error
}

// Create: nonaktifkan yang lain + insert dalam satu transaksi.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req dto.CreateClockSettingRequest) (*model.ClockSettingModel, error) {
	in, out, active, err := req.Parse()
	if err != nil {
		return nil, err
	}
	m := &model.ClockSettingModel{
		ClockInStartTime:  in,
		ClockOutStartTime: out,
		IsActive:          active,
		CreatedByID:       &actorID,
		UpdatedByID:       &actorID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if active {
			if err := deactivateAll(tx, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, helper.MapDBError(err, msgConflict)
	}
	log.Printf("[INFO] clock setting dibuat %s (in=%s out=%s active=%v)", m.ID, in, out, active)
	return m, nil
}

// Update: by id kalau dikirim dan ada, selain itu baris terbaru apa pun statusnya.
func (s *Service) Update(ctx context.Context, actorID uuid.UUID, req dto.UpdateClockSettingRequest) (*model.ClockSettingModel, error) {
	var m model.ClockSettingModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found := false
		if req.ID != nil && *req.ID != uuid.Nil {
			err := tx.Where("id = ?", *req.ID).First(&m).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = err == nil
		}
		if !found {
			if err := tx.Order("created_at DESC").First(&m).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, MsgNotFoundForUpdate)
				}
				return err
			}
		}
		if err := req.ApplyTo(&m); err != nil {
			return err
		}
		if m.IsActive {
			if err := deactivateAll(tx, m.ID); err != nil {
				return err
			}
		}
		m.UpdatedByID = &actorID
		return tx.Model(&m).Select("clock_in_start_time", "clock_out_start_time", "is_active", "active_flag", "updated_by_id", "updated_at").Updates(&m).Error
	})
	if err != nil {
		return nil, helper.MapDBError(err, msgConflict)
	}
	return &m, nil
}
