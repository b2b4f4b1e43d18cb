// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "officer_duty_backend/internals/features/users/auth/repository"
	helper "officer_duty_backend/internals/helpers"
	helpersAuth "officer_duty_backend/internals/helpers/auth"
	"officer_duty_backend/internals/helpers/authz"
)

const (
	msgUnauthorized = "Not authorized to access this route"
	msgBlacklisted  = "Unauthorized - Token is blacklisted"
	msgExpired      = "Unauthorized - Token expired"
)

// AuthMiddleware memverifikasi bearer token lalu memuat principal dari DB,
// sehingga role & department selalu yang terbaru (bukan dari klaim token).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			blacklisted, err := authRepo.IsTokenBlacklisted(c.UserContext(), db, tokenString)
			if err != nil {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Server error")
			}
			if blacklisted {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, msgBlacklisted)
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi signature
		claims, err := helpersAuth.ParseAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, helpersAuth.ErrMissingSecret) {
				log.Println("[ERROR] JWT_SECRET kosong")
				return fiber.NewError(fiber.StatusInternalServerError, "Server error")
			}
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
		}

		// 4) Validasi exp
		if err := helpersAuth.ValidateExpiry(claims, time.Now().UTC(), helpersAuth.ClockSkew); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, msgExpired)
		}

		// 5) Ambil user_id & muat principal
		userID, err := helpersAuth.UserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
		}
		user, err := authRepo.FindUserByID(db.WithContext(c.UserContext()), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
			}
			return helper.MapDBError(err, "")
		}

		// 6) Simpan ke context
		principal := authz.Principal{
			ID:         user.ID,
			Username:   user.Username,
			Role:       user.Role,
			Department: user.DepartmentName(),
		}
		c.Locals("user_id", user.ID.String())
		c.Locals("userRole", user.Role.String())
		c.Locals(helper.LocRawToken, tokenString)
		c.Locals(authz.LocalsPrincipal, principal)
		return c.Next()
	}
}
