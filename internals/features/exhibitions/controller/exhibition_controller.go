package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/exhibitions/dto"
	service "artspace_backend/internals/features/exhibitions/service"
	helper "artspace_backend/internals/helpers"
)

type ExhibitionController struct {
	crud.Controller[dto.ExhibitionDTO]
	svc *service.ExhibitionService
}

func NewExhibitionController(db *gorm.DB) *ExhibitionController {
	svc := service.NewExhibitionService(db)
	return &ExhibitionController{
		Controller: crud.NewController[dto.ExhibitionDTO](svc),
		svc:        svc,
	}
}

// GET /exhibitions/current
func (ctrl *ExhibitionController) Current(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_date", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindCurrent(c.UserContext(), p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /exhibitions/upcoming
func (ctrl *ExhibitionController) Upcoming(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_date", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindUpcoming(c.UserContext(), p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /exhibitions/search/by-title?title=
func (ctrl *ExhibitionController) SearchByTitle(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'title' is required")
	}
	p := helper.ParseFiber(c, "start_date", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByTitle(c.UserContext(), title, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /exhibitions/search
func (ctrl *ExhibitionController) Search(c *fiber.Ctx) error {
	var body dto.ExhibitionSearchDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	p := helper.ParseFiber(c, "start_date", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.Search(c.UserContext(), body, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}
