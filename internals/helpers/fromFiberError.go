package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error hasil service/Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten via JsonError.
// Selain *fiber.Error → 500 tanpa membocorkan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Server error")
}

// ErrorHandler dipasang di fiber.Config supaya error yang lolos dari handler
// (middleware auth, 404 route, panic yang sudah di-recover) tetap ber-envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
