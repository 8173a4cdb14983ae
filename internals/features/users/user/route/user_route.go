package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/users/user/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// UserRoutes: profile is self-service for any authenticated user, everything
// else is admin-only. Named routes go first so "/:id" cannot shadow them.
func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	self := app.Group("/users", authMW.RequireAuth())
	self.Get("/profile", ctrl.GetProfile)
	self.Put("/profile", ctrl.UpdateProfile)

	adm := app.Group("/users", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	adm.Get("/by-login", ctrl.GetByLogin)
	adm.Get("/by-full-name", ctrl.SearchByFullName)
	adm.Post("/search", ctrl.Search)
	ctrl.RegisterWrites(adm)
	ctrl.RegisterReads(adm)
}
