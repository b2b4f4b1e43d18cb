package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"officer_duty_backend/internals/configs"
	helper "officer_duty_backend/internals/helpers"
)

// rateLimitEnabled: RATE_LIMIT_ENABLED=false mematikan semua limiter (dev / test).
func rateLimitEnabled() bool {
	return configs.GetEnv("RATE_LIMIT_ENABLED", "true") != "false"
}

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	enabled := rateLimitEnabled()
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return !enabled
		},
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Too many requests. Please try again later.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Too many login attempts. Please try again in a moment.")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "Too many registration attempts. Please wait a few minutes.")
}
