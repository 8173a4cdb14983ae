package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/artists/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// ArtistRoutes exposes the public catalog reads and the admin-only writes.
// Search routes go first so "/:id" cannot shadow them.
func ArtistRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewArtistController(db)

	pub := app.Group("/artists")
	pub.Get("/search/by-name", ctrl.SearchByName)
	pub.Get("/search/by-country", ctrl.SearchByCountry)
	pub.Post("/search", ctrl.Search)
	ctrl.RegisterReads(pub)

	adm := app.Group("/artists", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	ctrl.RegisterWrites(adm)
	adm.Post("/:id<int>/photo", ctrl.UploadPhoto)
}
