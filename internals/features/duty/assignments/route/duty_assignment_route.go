package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/duty/assignments/controller"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func DutyAssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDutyAssignmentController(db, helper.NewValidator())

	g := r.Group("/duty-assignments")
	g.Get("/", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActRead), ctl.List)
	g.Get("/me", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActReadOwn), ctl.ListMine)
	g.Get("/:id", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActRead), ctl.Get)
	g.Post("/", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActCreate), ctl.Create)
	g.Put("/:id", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActUpdate), ctl.Update)
	g.Delete("/:id", authMiddleware.Allow(authz.ResDutyAssignments, authz.ActDelete), ctl.Delete)
}
