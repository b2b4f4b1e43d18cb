package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/notifications/notifications/controller"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

// NotificationRoutes: r sudah melewati AuthMiddleware.
func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/me", authMiddleware.Allow(authz.ResNotifications, authz.ActReadOwn), ctl.ListMine)
	g.Get("/me/unread-count", authMiddleware.Allow(authz.ResNotifications, authz.ActReadOwn), ctl.UnreadCount)
	g.Patch("/read-all", authMiddleware.Allow(authz.ResNotifications, authz.ActUpdateOwn), ctl.MarkAllRead)
	g.Patch("/:id/read", authMiddleware.Allow(authz.ResNotifications, authz.ActUpdateOwn), ctl.MarkRead)
}
