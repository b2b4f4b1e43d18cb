// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rateLimiter "officer_duty_backend/internals/middlewares"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
	routeDetails "officer_duty_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api", rateLimiter.GlobalRateLimiter())

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db)

	// ===================== PROTECTED =====================
	// Semua route di bawah ini butuh bearer token; role dicek per route.
	protected := api.Group("", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(protected, db)

	log.Println("[INFO] Mounting Duty routes...")
	routeDetails.DutyRoutes(protected, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(protected, db)

	log.Println("[INFO] Mounting Dashboard routes...")
	routeDetails.DashboardRoutes(protected, db)

	log.Println("[INFO] Routes ready.")
}
