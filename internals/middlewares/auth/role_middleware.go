package auth

import (
	"github.com/gofiber/fiber/v2"

	authHelper "artspace_backend/internals/helpers/auth"
)

// OnlyRoles allows the request through when the authenticated identity holds
// one of the given roles. Anonymous requests get 401, wrong role gets 403.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := authHelper.FromFiber(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "Authentication required",
			})
		}
		for _, allowed := range roles {
			if ident.Role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    fiber.StatusForbidden,
			"status":  "error",
			"message": "You are not authorized to access this resource",
		})
	}
}
