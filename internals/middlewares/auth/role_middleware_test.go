package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/constants"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

func withPrincipal(role constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(authz.LocalsPrincipal, authz.Principal{ID: uuid.New(), Role: role})
		}
		return c.Next()
	}
}

func TestAllow(t *testing.T) {
	tests := []struct {
		name string
		role constants.Role
		res  authz.Resource
		act  authz.Action
		want int
	}{
		{"admin exports attendance", constants.RoleAdmin, authz.ResAttendance, authz.ActExport, fiber.StatusOK},
		{"officer clocks in", constants.RoleOfficer, authz.ResAttendance, authz.ActClock, fiber.StatusOK},
		{"admin cannot clock in", constants.RoleAdmin, authz.ResAttendance, authz.ActClock, fiber.StatusForbidden},
		{"officer cannot review absence", constants.RoleOfficer, authz.ResAbsenceRequests, authz.ActReview, fiber.StatusForbidden},
		{"supervisor reads department dashboard", constants.RoleSupervisor, authz.ResDashboard, authz.ActReadDepartment, fiber.StatusOK},
		{"no principal", "", authz.ResOfficers, authz.ActRead, fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
			app.Get("/x", withPrincipal(tt.role), Allow(tt.res, tt.act), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil), -1)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer   abc.def", "abc.def", true},
		{`Bearer "abc.def"`, "abc.def", true},
		{"Token abc.def", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	var got string
	var gotErr error
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		got, gotErr = extractBearerToken(c)
		return nil
	})
	for _, tt := range tests {
		got, gotErr = "", nil
		req := httptest.NewRequest("GET", "/t", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if _, err := app.Test(req, -1); err != nil {
			t.Fatalf("request: %v", err)
		}
		if (gotErr == nil) != tt.ok || got != tt.want {
			t.Fatalf("header %q: got %q, %v", tt.header, got, gotErr)
		}
	}
}
