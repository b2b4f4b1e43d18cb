package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/configs"
	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/databases/dbtest"
	userModel "officer_duty_backend/internals/features/users/user/model"
	helper "officer_duty_backend/internals/helpers"
	helpersAuth "officer_duty_backend/internals/helpers/auth"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	configs.JWTSecret = "route-test-secret"
	configs.AppLocation = time.UTC

	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	SetupRoutes(app, db)
	return app, db
}

func tokenFor(t *testing.T, u *userModel.UserModel) string {
	t.Helper()
	tok, err := helpersAuth.IssueAccessToken(u.ID, u.Username, u.Role, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = sonic.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)
	code, _ := call(t, app, "GET", "/health", "", nil)
	if code != fiber.StatusOK {
		t.Fatalf("GET /health = %d", code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newApp(t)

	for _, path := range []string{"/api/officers", "/api/duty-assignments", "/api/auth/me", "/api/dashboard/stats"} {
		code, env := call(t, app, "GET", path, "", nil)
		if code != fiber.StatusUnauthorized {
			t.Fatalf("GET %s without token = %d", path, code)
		}
		if env.Success || env.ErrorCode != "UNAUTHORIZED" {
			t.Fatalf("GET %s envelope = %+v", path, env)
		}
	}

	code, _ := call(t, app, "GET", "/api/officers", "not-a-jwt", nil)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("garbage token = %d", code)
	}
}

func TestRolePolicy(t *testing.T) {
	app, db := newApp(t)
	admin := tokenFor(t, dbtest.User(t, db, "admin", constants.RoleAdmin, ""))
	sup := tokenFor(t, dbtest.User(t, db, "sup", constants.RoleSupervisor, "Patrol"))
	officer := tokenFor(t, dbtest.User(t, db, "officer", constants.RoleOfficer, "Patrol"))

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"officer cannot read org dashboard", "GET", "/api/dashboard/stats", officer, fiber.StatusForbidden},
		{"supervisor cannot read org dashboard", "GET", "/api/dashboard/stats", sup, fiber.StatusForbidden},
		{"admin reads org dashboard", "GET", "/api/dashboard/stats", admin, fiber.StatusOK},
		{"supervisor reads department dashboard", "GET", "/api/dashboard/stats/supervisor", sup, fiber.StatusOK},
		{"officer cannot create officers", "POST", "/api/officers", officer, fiber.StatusForbidden},
		{"officer cannot export attendance", "GET", "/api/attendance/export", officer, fiber.StatusForbidden},
		{"officer lists roster", "GET", "/api/officers", officer, fiber.StatusOK},
		{"admin unread notifications", "GET", "/api/notifications/me/unread-count", admin, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := call(t, app, tt.method, tt.path, tt.token, nil)
			if code != tt.want {
				t.Fatalf("%s %s = %d (%s), want %d", tt.method, tt.path, code, env.Message, tt.want)
			}
		})
	}
}

func TestLoginMeLogout(t *testing.T) {
	app, _ := newApp(t)

	code, env := call(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"username":   "budi",
		"password":   "secret123",
		"department": "Patrol",
	})
	if code != fiber.StatusCreated {
		t.Fatalf("register = %d (%s)", code, env.Message)
	}

	code, env = call(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "budi", "password": "secret123"})
	if code != fiber.StatusOK {
		t.Fatalf("login = %d (%s)", code, env.Message)
	}
	var auth struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := sonic.Unmarshal(env.Data, &auth); err != nil || auth.Token == "" {
		t.Fatalf("login data = %s, %v", env.Data, err)
	}
	if auth.Role != "officer" {
		t.Fatalf("role = %q", auth.Role)
	}

	code, env = call(t, app, "GET", "/api/auth/me", auth.Token, nil)
	if code != fiber.StatusOK {
		t.Fatalf("me = %d (%s)", code, env.Message)
	}
	var me struct {
		Username   string  `json:"username"`
		Department *string `json:"department"`
	}
	if err := sonic.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("me data: %v", err)
	}
	if me.Username != "budi" || me.Department == nil || *me.Department != "Patrol" {
		t.Fatalf("me = %+v", me)
	}

	code, _ = call(t, app, "POST", "/api/auth/login", "", fiber.Map{"username": "budi", "password": "wrong"})
	if code != fiber.StatusUnauthorized {
		t.Fatalf("bad login = %d", code)
	}

	if code, _ = call(t, app, "POST", "/api/auth/logout", auth.Token, nil); code != fiber.StatusOK {
		t.Fatalf("logout = %d", code)
	}
	code, env = call(t, app, "GET", "/api/auth/me", auth.Token, nil)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("me after logout = %d (%s)", code, env.Message)
	}
}
