package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/users/user/controller"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func OfficerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOfficerController(db, helper.NewValidator())

	g := r.Group("/officers")
	g.Get("/", authMiddleware.Allow(authz.ResOfficers, authz.ActRead), ctl.List)
	g.Get("/:id", authMiddleware.Allow(authz.ResOfficers, authz.ActRead), ctl.Get)
	g.Post("/", authMiddleware.Allow(authz.ResOfficers, authz.ActCreate), ctl.Create)
	g.Put("/:id", authMiddleware.Allow(authz.ResOfficers, authz.ActUpdate), ctl.Update)
	g.Delete("/:id", authMiddleware.Allow(authz.ResOfficers, authz.ActDelete), ctl.Delete)
}
