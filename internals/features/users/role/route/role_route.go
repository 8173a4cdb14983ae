package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/users/role/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// RoleRoutes is admin-only end to end: roles define the authorization
// scheme itself.
func RoleRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewRoleController(db)

	r := app.Group("/roles", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	ctrl.RegisterWrites(r)
	ctrl.RegisterReads(r)
}
