package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/helpers/authz"
)

// Allow menegakkan tabel policy (role, resource, action). Dipasang sesudah AuthMiddleware.
func Allow(res authz.Resource, act authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := authz.FromCtx(c)
		if err != nil {
			return err
		}
		if !authz.Allowed(p.Role, res, act) {
			log.Printf("[WARN] role %s ditolak: %s %s", p.Role, act, res)
			return fiber.NewError(fiber.StatusForbidden, constants.ErrRoleNotAuthorized)
		}
		return c.Next()
	}
}
