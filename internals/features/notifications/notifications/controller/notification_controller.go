package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/notifications/notifications/dto"
	"officer_duty_backend/internals/features/notifications/notifications/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

type NotificationController struct {
	DB  *gorm.DB
	Svc *service.Service
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Svc: service.New(db)}
}

// GET /api/notifications/me?unread=true
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	unread := strings.EqualFold(strings.TrimSpace(c.Query("unread")), "true")
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Svc.ListMine(c.UserContext(), p.ID, unread, paging)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/notifications/me/unread-count
func (ctl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	n, err := ctl.Svc.UnreadCount(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"unreadCount": n})
}

// PATCH /api/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	n, err := ctl.Svc.MarkRead(c.UserContext(), p.ID, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Notification marked as read", dto.FromModel(n))
}

// PATCH /api/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	n, err := ctl.Svc.MarkAllRead(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": n})
}
