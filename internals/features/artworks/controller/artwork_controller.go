package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/artworks/dto"
	model "artspace_backend/internals/features/artworks/model"
	service "artspace_backend/internals/features/artworks/service"
	helper "artspace_backend/internals/helpers"
)

type ArtworkController struct {
	crud.Controller[dto.ArtworkDTO]
	svc *service.ArtworkService
}

func NewArtworkController(db *gorm.DB) *ArtworkController {
	svc := service.NewArtworkService(db)
	return &ArtworkController{
		Controller: crud.NewController[dto.ArtworkDTO](svc),
		svc:        svc,
	}
}

// GET /artworks/search/by-title?title=
func (ctrl *ArtworkController) SearchByTitle(c *fiber.Ctx) error {
	title := c.Query("title")
	if title == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'title' is required")
	}
	p := helper.ParseFiber(c, "title", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByTitle(c.UserContext(), title, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /artworks/search/by-category?category=
func (ctrl *ArtworkController) SearchByCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'category' is required")
	}
	p := helper.ParseFiber(c, "title", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByCategory(c.UserContext(), model.ArtCategory(category), p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /artworks/search/by-artist-name?name=
func (ctrl *ArtworkController) SearchByArtistName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'name' is required")
	}
	p := helper.ParseFiber(c, "title", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByArtistName(c.UserContext(), name, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /artworks/search
func (ctrl *ArtworkController) Search(c *fiber.Ctx) error {
	var body dto.ArtworkSearchDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	p := helper.ParseFiber(c, "title", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.Search(c.UserContext(), body, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /artworks/:id/image (multipart field "file")
func (ctrl *ArtworkController) UploadImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Multipart field 'file' is required")
	}
	path, err := helper.SaveImageAsWebP(configs.UploadDir, "artworks", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Could not process image: "+err.Error())
	}
	if err := ctrl.svc.SetImagePath(c.UserContext(), uint(id), path); err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "img_path": path})
}
