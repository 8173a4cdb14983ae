package middlewares

import (
	"github.com/gofiber/fiber/v2"

	authMW "artspace_backend/internals/middlewares/auth"
)

// SetupMiddlewares wires the app-wide middleware chain. The token filter runs
// on every request; route groups decide whether an identity is required.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(authMW.TokenFilter())
}
