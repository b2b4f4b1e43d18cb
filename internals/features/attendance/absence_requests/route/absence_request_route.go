package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/absence_requests/controller"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func AbsenceRequestRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAbsenceRequestController(db, helper.NewValidator())

	g := r.Group("/absence-requests")
	g.Post("/", authMiddleware.Allow(authz.ResAbsenceRequests, authz.ActCreate), ctl.Create)
	g.Get("/me", authMiddleware.Allow(authz.ResAbsenceRequests, authz.ActReadOwn), ctl.ListMine)
	g.Get("/", authMiddleware.Allow(authz.ResAbsenceRequests, authz.ActRead), ctl.List)
	g.Put("/:id/status", authMiddleware.Allow(authz.ResAbsenceRequests, authz.ActReview), ctl.UpdateStatus)
}
