package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/tickets/dto"
	service "artspace_backend/internals/features/tickets/service"
	helper "artspace_backend/internals/helpers"
	authHelper "artspace_backend/internals/helpers/auth"
)

type TicketController struct {
	crud.Controller[dto.TicketDTO]
	svc *service.TicketService
}

func NewTicketController(db *gorm.DB) *TicketController {
	svc := service.NewTicketService(db)
	ctrl := &TicketController{
		Controller: crud.NewController[dto.TicketDTO](svc),
		svc:        svc,
	}
	ctrl.PageOpts = helper.AdminOpts
	return ctrl
}

// POST /tickets/purchase buys a ticket for the authenticated user.
func (ctrl *TicketController) Purchase(c *fiber.Ctx) error {
	ident, ok := authHelper.FromFiber(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}
	var body dto.PurchaseDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	created, err := ctrl.svc.Purchase(c.UserContext(), ident, body)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /tickets/my lists the authenticated user's tickets.
func (ctrl *TicketController) My(c *fiber.Ctx) error {
	ident, ok := authHelper.FromFiber(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}
	p := helper.ParseFiber(c, "purchase_date", "desc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindMine(c.UserContext(), ident.UserID, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /tickets/search/by-exhibition?exhibition_id=
func (ctrl *TicketController) SearchByExhibition(c *fiber.Ctx) error {
	id := c.QueryInt("exhibition_id")
	if id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'exhibition_id' is required")
	}
	p := helper.ParseFiber(c, "purchase_date", "desc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByExhibition(c.UserContext(), uint(id), p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /tickets/search
func (ctrl *TicketController) Search(c *fiber.Ctx) error {
	var body dto.TicketSearchDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	p := helper.ParseFiber(c, "purchase_date", "desc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.Search(c.UserContext(), body, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}
