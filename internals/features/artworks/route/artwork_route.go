package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/artworks/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// ArtworkRoutes exposes the public catalog reads and the admin-only writes.
// Search routes go first so "/:id" cannot shadow them.
func ArtworkRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewArtworkController(db)

	pub := app.Group("/artworks")
	pub.Get("/search/by-title", ctrl.SearchByTitle)
	pub.Get("/search/by-category", ctrl.SearchByCategory)
	pub.Get("/search/by-artist-name", ctrl.SearchByArtistName)
	pub.Post("/search", ctrl.Search)
	ctrl.RegisterReads(pub)

	adm := app.Group("/artworks", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	ctrl.RegisterWrites(adm)
	adm.Post("/:id<int>/image", ctrl.UploadImage)
}
