package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/exhibitions/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// ExhibitionRoutes exposes the public program reads and the admin-only writes.
// Listing/search routes go first so "/:id" cannot shadow them.
func ExhibitionRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewExhibitionController(db)

	pub := app.Group("/exhibitions")
	pub.Get("/current", ctrl.Current)
	pub.Get("/upcoming", ctrl.Upcoming)
	pub.Get("/search/by-title", ctrl.SearchByTitle)
	pub.Post("/search", ctrl.Search)
	ctrl.RegisterReads(pub)

	adm := app.Group("/exhibitions", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	ctrl.RegisterWrites(adm)
}
