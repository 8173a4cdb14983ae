package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/artists/dto"
	service "artspace_backend/internals/features/artists/service"
	helper "artspace_backend/internals/helpers"
)

type ArtistController struct {
	crud.Controller[dto.ArtistDTO]
	svc *service.ArtistService
}

func NewArtistController(db *gorm.DB) *ArtistController {
	svc := service.NewArtistService(db)
	return &ArtistController{
		Controller: crud.NewController[dto.ArtistDTO](svc),
		svc:        svc,
	}
}

// GET /artists/search/by-name?name=
func (ctrl *ArtistController) SearchByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'name' is required")
	}
	p := helper.ParseFiber(c, "name", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByName(c.UserContext(), name, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// GET /artists/search/by-country?country=
func (ctrl *ArtistController) SearchByCountry(c *fiber.Ctx) error {
	country := c.Query("country")
	if country == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'country' is required")
	}
	p := helper.ParseFiber(c, "name", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByCountry(c.UserContext(), country, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /artists/search
func (ctrl *ArtistController) Search(c *fiber.Ctx) error {
	var body dto.ArtistSearchDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p := helper.ParseFiber(c, "name", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.Search(c.UserContext(), body, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /artists/:id/photo (multipart field "file")
func (ctrl *ArtistController) UploadPhoto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Multipart field 'file' is required")
	}
	path, err := helper.SaveImageAsWebP(configs.UploadDir, "artists", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Could not process image: "+err.Error())
	}
	if err := ctrl.svc.SetPhotoPath(c.UserContext(), uint(id), path); err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "photo_path": path})
}
