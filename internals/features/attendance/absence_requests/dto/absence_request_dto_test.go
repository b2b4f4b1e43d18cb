package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "officer_duty_backend/internals/helpers"
)

func TestCreateAbsenceValidation(t *testing.T) {
	v := helper.NewValidator()

	req := CreateAbsenceRequest{StartDate: "2024-03-05", Reason: "  "}
	req.Normalize()
	fields := helper.FieldErrors(v.Struct(&req))
	for _, k := range []string{"endDate", "reason"} {
		if _, ok := fields[k]; !ok {
			t.Fatalf("errors = %v, want key %q", fields, k)
		}
	}
	if _, ok := fields["startDate"]; ok {
		t.Fatalf("startDate flagged: %v", fields)
	}
}

func TestToModelDateOrder(t *testing.T) {
	req := CreateAbsenceRequest{StartDate: "2024-03-10", EndDate: "2024-03-05", Reason: "sick"}
	_, err := req.ToModel(uuid.New())
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest || fe.Message != MsgDateOrder {
		t.Fatalf("err = %v", err)
	}

	req.EndDate = "2024-03-10"
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("same-day range: %v", err)
	}
	if m.StartDate.String() != m.EndDate.String() {
		t.Fatalf("dates = %s..%s", m.StartDate, m.EndDate)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	v := helper.NewValidator()

	tests := []struct {
		status string
		ok     bool
	}{
		{"approved", true},
		{" Rejected ", true},
		{"pending", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			req := UpdateStatusRequest{Status: tt.status}
			req.Normalize()
			fields := helper.FieldErrors(v.Struct(&req))
			if _, bad := fields["status"]; bad == tt.ok {
				t.Fatalf("status %q: errors = %v", tt.status, fields)
			}
		})
	}
}
