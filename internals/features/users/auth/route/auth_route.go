package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "artspace_backend/internals/features/users/auth/controller"
	"artspace_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := app.Group("/auth")
	r.Post("/register", ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/logout", ctrl.Logout)
}
