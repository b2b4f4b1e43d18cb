package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/configs"
	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/databases/dbtest"
	"officer_duty_backend/internals/features/attendance/clock_settings/dto"
	"officer_duty_backend/internals/features/attendance/clock_settings/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/clockwindow"
	"officer_duty_backend/internals/helpers/dbtime"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T, hhmm string) (*Service, uuid.UUID) {
	t.Helper()
	configs.AppLocation = time.UTC
	db := dbtest.Open(t)
	admin := dbtest.User(t, db, "admin", constants.RoleAdmin, "")

	now, err := time.Parse("2006-01-02 15:04", "2024-03-05 "+hhmm)
	if err != nil {
		t.Fatalf("parse now: %v", err)
	}
	svc := New(db)
	svc.Now = func() time.Time { return now }
	return svc, admin.ID
}

func TestAvailabilityNotConfigured(t *testing.T) {
	svc, _ := newTestService(t, "08:00")

	cur, err := svc.Current(context.Background())
	if err != nil || cur != nil {
		t.Fatalf("Current = %v, %v; want nil, nil", cur, err)
	}
	a, err := svc.Availability(context.Background())
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if a.CanClockIn || a.CanClockOut || a.Message != clockwindow.MsgNotConfigured {
		t.Fatalf("availability = %+v", a)
	}
}

func TestCreateKeepsSingleActiveRow(t *testing.T) {
	svc, adminID := newTestService(t, "08:00")
	ctx := context.Background()

	first, err := svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "07:00", ClockOutStartTime: "16:00"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "08:30", ClockOutStartTime: "17:00"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	var active []model.ClockSettingModel
	svc.DB.Where("is_active = ?", true).Find(&active)
	if len(active) != 1 || active[0].ID != second.ID {
		t.Fatalf("active rows = %d, want only %s", len(active), second.ID)
	}

	var old model.ClockSettingModel
	svc.DB.First(&old, "id = ?", first.ID)
	if old.IsActive || old.ActiveFlag != nil {
		t.Fatalf("first row still active: %+v", old)
	}

	a, err := svc.Availability(ctx)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if a.CanClockIn || a.CanClockOut {
		t.Fatalf("08:00 is before 08:30, got %+v", a)
	}
	if a.Message != "Clock-in starts at 08:30:00, clock-out starts at 17:00:00" {
		t.Fatalf("message = %q", a.Message)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].CreatedBy == nil || history[0].CreatedBy.ID != adminID {
		t.Fatalf("history = %+v", history)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, adminID := newTestService(t, "08:00")
	ctx := context.Background()

	_, err := svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "07:00"})
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	_, err = svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "07:00", ClockOutStartTime: "07:00"})
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	_, err = svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "25:00", ClockOutStartTime: "07:00"})
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
}

func TestUpdateLatestAndDisable(t *testing.T) {
	svc, adminID := newTestService(t, "12:00")
	ctx := context.Background()

	_, err := svc.Update(ctx, adminID, dto.UpdateClockSettingRequest{ClockInStartTime: strPtr("06:00")})
	fe := dbtest.ExpectStatus(t, err, fiber.StatusNotFound)
	if fe.Message != MsgNotFoundForUpdate {
		t.Fatalf("message = %q", fe.Message)
	}

	created, err := svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "07:00", ClockOutStartTime: "16:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, adminID, dto.UpdateClockSettingRequest{ClockOutStartTime: strPtr("11:00")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID || updated.ClockOutStartTime.String() != "11:00:00" {
		t.Fatalf("updated = %+v", updated)
	}
	a, _ := svc.Availability(ctx)
	if !a.CanClockOut || a.CanClockIn {
		t.Fatalf("12:00 after clock-out start 11:00, got %+v", a)
	}

	if _, err := svc.Update(ctx, adminID, dto.UpdateClockSettingRequest{ID: &created.ID, IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("disable: %v", err)
	}
	a, _ = svc.Availability(ctx)
	if a.Message != clockwindow.MsgDisabled || a.CanClockIn || a.CanClockOut {
		t.Fatalf("availability after disable = %+v", a)
	}
}

func TestUpdateUnknownIDFallsBackToLatest(t *testing.T) {
	svc, adminID := newTestService(t, "12:00")
	ctx := context.Background()

	created, err := svc.Create(ctx, adminID, dto.CreateClockSettingRequest{ClockInStartTime: "07:00", ClockOutStartTime: "16:00", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	unknown := uuid.New()
	updated, err := svc.Update(ctx, adminID, dto.UpdateClockSettingRequest{ID: &unknown, ClockOutStartTime: strPtr("15:00")})
	if err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if updated.ID != created.ID || updated.ClockOutStartTime.String() != "15:00:00" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestActiveRowUniqueIndex(t *testing.T) {
	svc, _ := newTestService(t, "08:00")

	first := model.ClockSettingModel{ClockInStartTime: dbtime.MustParse("07:00"), ClockOutStartTime: dbtime.MustParse("16:00"), IsActive: true}
	if err := svc.DB.Create(&first).Error; err != nil {
		t.Fatalf("first active row: %v", err)
	}

	second := model.ClockSettingModel{ClockInStartTime: dbtime.MustParse("08:00"), ClockOutStartTime: dbtime.MustParse("17:00"), IsActive: true}
	err := svc.DB.Create(&second).Error
	if err == nil {
		t.Fatal("second active row inserted")
	}
	fe := dbtest.ExpectStatus(t, helper.MapDBError(err, msgConflict), fiber.StatusBadRequest)
	if fe.Message != msgConflict {
		t.Fatalf("message = %q", fe.Message)
	}

	inactive := model.ClockSettingModel{ClockInStartTime: dbtime.MustParse("09:00"), ClockOutStartTime: dbtime.MustParse("18:00")}
	if err := svc.DB.Create(&inactive).Error; err != nil {
		t.Fatalf("inactive row: %v", err)
	}
}
