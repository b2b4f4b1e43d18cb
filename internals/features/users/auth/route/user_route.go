package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/users/auth/controller"
	helper "officer_duty_backend/internals/helpers"
	rateLimiter "officer_duty_backend/internals/middlewares"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

// AuthRoutes: register & login publik (dengan limiter), sisanya butuh token.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db, helper.NewValidator())

	g := r.Group("/auth")

	// 🔓 Public
	g.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	g.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔐 Protected
	protected := authMiddleware.AuthMiddleware(db)
	g.Get("/me", protected, authController.Me)
	g.Post("/logout", protected, authController.Logout)
	g.Post("/change-password", protected, authController.ChangePassword)
}
