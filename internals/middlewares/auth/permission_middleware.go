package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "tciv_backend/internals/helpers/auth"
)

// RequirePermission corta con 403 si la sesión no trae la capacidad.
// Debe ir después de AuthJWT.
func RequirePermission(capability string, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := helperAuth.SessionFromCtx(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		if !helperAuth.HasPermission(sess, capability) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
		}
		return c.Next()
	}
}
