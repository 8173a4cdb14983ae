package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artistRoute "artspace_backend/internals/features/artists/route"
	artworkRoute "artspace_backend/internals/features/artworks/route"
	exhibitionRoute "artspace_backend/internals/features/exhibitions/route"
	ticketRoute "artspace_backend/internals/features/tickets/route"
	authRoute "artspace_backend/internals/features/users/auth/route"
	roleRoute "artspace_backend/internals/features/users/role/route"
	userRoute "artspace_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature. The catalog reads are public; each
// feature's own route file decides what sits behind auth and the ADMIN role.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	authRoute.AuthRoutes(app, db)
	artistRoute.ArtistRoutes(app, db)
	artworkRoute.ArtworkRoutes(app, db)
	exhibitionRoute.ExhibitionRoutes(app, db)
	ticketRoute.TicketRoutes(app, db)
	userRoute.UserRoutes(app, db)
	roleRoute.RoleRoutes(app, db)
}
