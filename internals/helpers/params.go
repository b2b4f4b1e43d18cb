package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/helpers/dbtime"
)

// ParseUUIDParam: path param → UUID; format salah → 400.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// ParseUUIDQuery: query kosong → (nil, nil).
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return &id, nil
}

// ParseDateQuery: query kosong → (nil, nil); format YYYY-MM-DD.
func ParseDateQuery(c *fiber.Ctx, name string) (*dbtime.Date, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	d, err := dbtime.ParseDate(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a date (YYYY-MM-DD)")
	}
	return &d, nil
}
