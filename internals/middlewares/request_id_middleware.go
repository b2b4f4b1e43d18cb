package middlewares

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

const (
	LocRequestID   = "request_id"
	requestTimeout = 10 * time.Second
)

// RequestID + timing: id dari X-Request-ID atau UUID baru, plus timeout guard
// di UserContext yang diteruskan ke query DB.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
		if id == "" {
			id = utils.UUID()
		}
		c.Locals(LocRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()
		c.SetUserContext(ctx)

		if err := c.Next(); err != nil {
			// render lewat ErrorHandler dulu supaya status di log benar
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return nil
	}
}
