package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/constants"
	controller "artspace_backend/internals/features/tickets/controller"
	authMW "artspace_backend/internals/middlewares/auth"
)

// TicketRoutes: purchase and "my tickets" are self-service for authenticated
// users, the rest is admin-only. Named routes go first so "/:id" cannot
// shadow them.
func TicketRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewTicketController(db)

	self := app.Group("/tickets", authMW.RequireAuth())
	self.Post("/purchase", ctrl.Purchase)
	self.Get("/my", ctrl.My)

	adm := app.Group("/tickets", authMW.RequireAuth(), authMW.OnlyRoles(constants.RoleAdmin))
	adm.Get("/search/by-exhibition", ctrl.SearchByExhibition)
	adm.Post("/search", ctrl.Search)
	ctrl.RegisterWrites(adm)
	ctrl.RegisterReads(adm)
}
