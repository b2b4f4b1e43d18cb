package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/configs"
	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/databases/dbtest"
	clockModel "officer_duty_backend/internals/features/attendance/clock_settings/model"
	"officer_duty_backend/internals/features/attendance/records/dto"
	"officer_duty_backend/internals/features/attendance/records/model"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/dbtime"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func at(day, hhmm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+hhmm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDate(t *testing.T, s string) dbtime.Date {
	t.Helper()
	d, err := dbtime.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func setup(t *testing.T, in, out string) (*Service, *gorm.DB, *fakeClock) {
	t.Helper()
	configs.AppLocation = time.UTC
	db := dbtest.Open(t)
	if in != "" {
		cfg := &clockModel.ClockSettingModel{
			ClockInStartTime:  dbtime.MustParse(in),
			ClockOutStartTime: dbtime.MustParse(out),
			IsActive:          true,
		}
		if err := db.Create(cfg).Error; err != nil {
			t.Fatalf("create clock setting: %v", err)
		}
	}
	clock := &fakeClock{}
	svc := New(db)
	svc.Now = clock.Now
	return svc, db, clock
}

func TestCheckInTwiceConflictsAndCheckOutOnce(t *testing.T) {
	svc, db, clock := setup(t, "07:00", "16:00")
	officer := dbtest.User(t, db, "officer1", constants.RoleOfficer, "Patrol")
	ctx := context.Background()

	clock.now = at("2024-03-05", "08:00")
	rec, err := svc.CheckIn(ctx, officer.ID)
	if err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	if rec.Status != model.StatusClockedIn || rec.Date.String() != "2024-03-05" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.User == nil || rec.User.Username != "officer1" {
		t.Fatalf("user not preloaded: %+v", rec.User)
	}

	_, err = svc.CheckIn(ctx, officer.ID)
	fe := dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
	if fe.Message != MsgAlreadyCheckedIn {
		t.Fatalf("message = %q", fe.Message)
	}

	clock.now = at("2024-03-05", "17:00")
	out, err := svc.CheckOut(ctx, officer.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if out.Status != model.StatusClockedOut || out.ClockOut == nil {
		t.Fatalf("unexpected check-out record %+v", out)
	}
	if out.ID != rec.ID {
		t.Fatalf("check-out closed %s, want %s", out.ID, rec.ID)
	}

	_, err = svc.CheckOut(ctx, officer.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusNotFound)

	var count int64
	db.Model(&model.AttendanceModel{}).Where("user_id = ?", officer.ID).Count(&count)
	if count != 1 {
		t.Fatalf("attendance rows = %d, want 1", count)
	}
}

func TestCheckInRespectsClockWindow(t *testing.T) {
	svc, db, clock := setup(t, "07:00", "16:00")
	officer := dbtest.User(t, db, "officer1", constants.RoleOfficer, "Patrol")
	ctx := context.Background()

	clock.now = at("2024-03-05", "06:59")
	_, err := svc.CheckIn(ctx, officer.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	clock.now = at("2024-03-05", "16:00")
	_, err = svc.CheckIn(ctx, officer.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	clock.now = at("2024-03-05", "07:00")
	if _, err := svc.CheckIn(ctx, officer.ID); err != nil {
		t.Fatalf("check-in at window start: %v", err)
	}

	clock.now = at("2024-03-05", "15:59")
	_, err = svc.CheckOut(ctx, officer.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
}

func TestCheckInWithoutClockSettings(t *testing.T) {
	svc, db, clock := setup(t, "", "")
	officer := dbtest.User(t, db, "officer1", constants.RoleOfficer, "Patrol")

	clock.now = at("2024-03-05", "08:00")
	_, err := svc.CheckIn(context.Background(), officer.ID)
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
}

func TestCheckOutAcrossMidnight(t *testing.T) {
	svc, db, clock := setup(t, "22:00", "06:00")
	officer := dbtest.User(t, db, "night", constants.RoleOfficer, "Patrol")
	ctx := context.Background()

	clock.now = at("2024-03-05", "23:00")
	rec, err := svc.CheckIn(ctx, officer.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	clock.now = at("2024-03-06", "06:30")
	out, err := svc.CheckOut(ctx, officer.ID)
	if err != nil {
		t.Fatalf("check-out next morning: %v", err)
	}
	if out.ID != rec.ID || out.Date.String() != "2024-03-05" {
		t.Fatalf("closed wrong record: %+v", out)
	}
}

func TestCheckInAfterMidnightKeepsOneOpenShift(t *testing.T) {
	svc, db, clock := setup(t, "22:00", "06:00")
	officer := dbtest.User(t, db, "night", constants.RoleOfficer, "Patrol")
	ctx := context.Background()

	clock.now = at("2024-03-05", "23:00")
	first, err := svc.CheckIn(ctx, officer.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	clock.now = at("2024-03-06", "00:30")
	_, err = svc.CheckIn(ctx, officer.ID)
	fe := dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
	if fe.Message != MsgAlreadyCheckedIn {
		t.Fatalf("message = %q", fe.Message)
	}

	clock.now = at("2024-03-06", "06:30")
	out, err := svc.CheckOut(ctx, officer.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if out.ID != first.ID {
		t.Fatalf("closed %s, want %s", out.ID, first.ID)
	}

	var open int64
	db.Model(&model.AttendanceModel{}).
		Where("user_id = ? AND status = ?", officer.ID, model.StatusClockedIn).
		Count(&open)
	if open != 0 {
		t.Fatalf("open records after check-out = %d", open)
	}
}

func TestOpenRecordUniqueIndex(t *testing.T) {
	_, db, _ := setup(t, "07:00", "16:00")
	officer := dbtest.User(t, db, "officer1", constants.RoleOfficer, "Patrol")
	day := mustDate(t, "2024-03-05")

	first := &model.AttendanceModel{UserID: officer.ID, ClockIn: at("2024-03-05", "08:00"), Date: day}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first open record: %v", err)
	}
	dup := &model.AttendanceModel{UserID: officer.ID, ClockIn: at("2024-03-05", "08:01"), Date: day}
	err := helper.MapDBError(db.Create(dup).Error, MsgAlreadyCheckedIn)
	fe := dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
	if fe.Message != MsgAlreadyCheckedIn {
		t.Fatalf("message = %q", fe.Message)
	}

	// record yang sudah ditutup tidak ikut unique index
	closed := &model.AttendanceModel{UserID: officer.ID, ClockIn: at("2024-03-05", "06:00"), Date: day, Status: model.StatusClockedOut}
	if err := db.Create(closed).Error; err != nil {
		t.Fatalf("closed record on same date: %v", err)
	}
}

func TestListFiltersAndExport(t *testing.T) {
	svc, db, clock := setup(t, "07:00", "16:00")
	a := dbtest.User(t, db, "alpha", constants.RoleOfficer, "Patrol")
	b := dbtest.User(t, db, "bravo", constants.RoleOfficer, "Traffic")
	ctx := context.Background()

	for _, day := range []string{"2024-03-04", "2024-03-05"} {
		clock.now = at(day, "08:00")
		if _, err := svc.CheckIn(ctx, a.ID); err != nil {
			t.Fatalf("check-in alpha %s: %v", day, err)
		}
		if _, err := svc.CheckIn(ctx, b.ID); err != nil {
			t.Fatalf("check-in bravo %s: %v", day, err)
		}
	}

	day := mustDate(t, "2024-03-05")
	rows, total, err := svc.List(ctx, dto.AttendanceFilter{StartDate: &day}, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("total=%d rows=%d, want 2/2", total, len(rows))
	}

	mine, err := svc.ListMine(ctx, a.ID, dto.AttendanceFilter{})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 2 || mine[0].Date.String() != "2024-03-05" {
		t.Fatalf("list mine = %d rows, first %v", len(mine), mine)
	}

	all, err := svc.ListForExport(ctx, dto.AttendanceFilter{UserID: &b.ID})
	if err != nil {
		t.Fatalf("export rows: %v", err)
	}
	buf, err := BuildExportWorkbook(all)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Attendance", "B1")
	if got != "Username" {
		t.Fatalf("B1 = %q", got)
	}
	got, _ = f.GetCellValue("Attendance", "B2")
	if got != "bravo" {
		t.Fatalf("B2 = %q", got)
	}
	sheetRows, _ := f.GetRows("Attendance")
	if len(sheetRows) != 3 {
		t.Fatalf("sheet rows = %d, want header + 2", len(sheetRows))
	}
}

func TestExportFilename(t *testing.T) {
	start := mustDate(t, "2024-03-01")
	if got := ExportFilename(&start, nil); got != "attendance_2024-03-01_all.xlsx" {
		t.Fatalf("ExportFilename = %q", got)
	}
}
