package dto

import (
	"testing"

	"officer_duty_backend/internals/features/duty/assignments/model"
	helper "officer_duty_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestValidation(t *testing.T) {
	v := helper.NewValidator()
	const uid = "7b0f7d36-9a8b-4c1e-9a51-5a7f3f0a2b11"

	tests := []struct {
		name  string
		req   CreateDutyAssignmentRequest
		field string
	}{
		{"ok", CreateDutyAssignmentRequest{UserID: uid, Date: "2024-03-05", TaskLocation: "Gate"}, ""},
		{"missing userId", CreateDutyAssignmentRequest{Date: "2024-03-05", TaskLocation: "Gate"}, "userId"},
		{"bad userId", CreateDutyAssignmentRequest{UserID: "abc", Date: "2024-03-05", TaskLocation: "Gate"}, "userId"},
		{"missing date", CreateDutyAssignmentRequest{UserID: uid, TaskLocation: "Gate"}, "date"},
		{"blank location", CreateDutyAssignmentRequest{UserID: uid, Date: "2024-03-05", TaskLocation: "   "}, "taskLocation"},
		{"bad status", CreateDutyAssignmentRequest{UserID: uid, Date: "2024-03-05", TaskLocation: "Gate", Status: strPtr("done")}, "status"},
		{"status case", CreateDutyAssignmentRequest{UserID: uid, Date: "2024-03-05", TaskLocation: "Gate", Status: strPtr(" Ongoing ")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			fields := helper.FieldErrors(v.Struct(&tt.req))
			if tt.field == "" {
				if len(fields) != 0 {
					t.Fatalf("unexpected errors %v", fields)
				}
				return
			}
			if _, ok := fields[tt.field]; !ok {
				t.Fatalf("errors = %v, want key %q", fields, tt.field)
			}
		})
	}
}

func TestCreateRequestParseDefaults(t *testing.T) {
	req := CreateDutyAssignmentRequest{
		UserID:       "7b0f7d36-9a8b-4c1e-9a51-5a7f3f0a2b11",
		Date:         "2024-03-05",
		TaskLocation: " Gate ",
		Department:   strPtr("  "),
	}
	in, err := req.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in.Status != model.DutyPending || in.TaskLocation != "Gate" || in.Department != "" {
		t.Fatalf("parsed = %+v", in)
	}

	req.Status = strPtr("COMPLETED")
	if in, _ = req.Parse(); in.Status != model.DutyCompleted {
		t.Fatalf("status = %q", in.Status)
	}
}

func TestUpdateRequestValidation(t *testing.T) {
	v := helper.NewValidator()

	req := UpdateDutyAssignmentRequest{TaskLocation: strPtr(" "), Status: strPtr("archived")}
	req.Normalize()
	fields := helper.FieldErrors(v.Struct(&req))
	if _, ok := fields["taskLocation"]; !ok {
		t.Fatalf("errors = %v, want taskLocation", fields)
	}
	if _, ok := fields["status"]; !ok {
		t.Fatalf("errors = %v, want status", fields)
	}

	empty := UpdateDutyAssignmentRequest{}
	if err := v.Struct(&empty); err != nil {
		t.Fatalf("empty partial update: %v", err)
	}
}
