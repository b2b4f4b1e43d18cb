package dto

import (
	"testing"

	helper "officer_duty_backend/internals/helpers"
)

func TestCreateClockSettingValidation(t *testing.T) {
	v := helper.NewValidator()

	req := CreateClockSettingRequest{ClockInStartTime: "07:00"}
	fields := helper.FieldErrors(v.Struct(&req))
	if fields["clockOutStartTime"] != "clockOutStartTime is required" {
		t.Fatalf("errors = %v", fields)
	}

	req.ClockOutStartTime = "07:00"
	if err := v.Struct(&req); err != nil {
		t.Fatalf("validator: %v", err)
	}
	if _, _, _, err := req.Parse(); err == nil {
		t.Fatal("equal times accepted")
	}

	req.ClockOutStartTime = "16:00"
	in, out, active, err := req.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !active || in.String() != "07:00:00" || out.String() != "16:00:00" {
		t.Fatalf("parsed %s %s active=%v", in, out, active)
	}
}

func TestUpdateClockSettingRejectsEmptyTime(t *testing.T) {
	v := helper.NewValidator()
	empty := ""
	req := UpdateClockSettingRequest{ClockInStartTime: &empty}
	fields := helper.FieldErrors(v.Struct(&req))
	if _, ok := fields["clockInStartTime"]; !ok {
		t.Fatalf("errors = %v", fields)
	}
}
