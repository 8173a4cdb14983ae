package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/constants"
	"artspace_backend/internals/crud"
	dto "artspace_backend/internals/features/users/user/dto"
	service "artspace_backend/internals/features/users/user/service"
	helper "artspace_backend/internals/helpers"
	authHelper "artspace_backend/internals/helpers/auth"
)

type UserController struct {
	crud.Controller[dto.UserDTO]
	svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	svc := service.NewUserService(db)
	ctrl := &UserController{
		Controller: crud.NewController[dto.UserDTO](svc),
		svc:        svc,
	}
	ctrl.PageOpts = helper.AdminOpts
	return ctrl
}

// GET /users/profile returns the authenticated user's own record. The
// bootstrap administrator has no row, so it gets a synthetic profile.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	ident, ok := authHelper.FromFiber(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}
	if ident.IsBootstrapAdmin() {
		return c.JSON(bootstrapProfile())
	}
	d, err := ctrl.svc.GetOne(c.UserContext(), ident.UserID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(d)
}

// PUT /users/profile updates the authenticated user's own record. Only an
// admin may touch role_id; everyone else gets it stripped.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	ident, ok := authHelper.FromFiber(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Authentication required")
	}
	if ident.IsBootstrapAdmin() {
		return helper.Error(c, fiber.StatusBadRequest, "The bootstrap administrator has no stored profile")
	}

	var body dto.UserDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	body.SetID(ident.UserID)
	if ident.Role != constants.RoleAdmin {
		body.RoleID = nil
	}

	updated, err := ctrl.svc.Update(c.UserContext(), &body)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(updated)
}

// GET /users/by-login?login=
func (ctrl *UserController) GetByLogin(c *fiber.Ctx) error {
	login := c.Query("login")
	if login == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'login' is required")
	}
	d, err := ctrl.svc.FindByLogin(c.UserContext(), login)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(d)
}

// GET /users/by-full-name?name=
func (ctrl *UserController) SearchByFullName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Query parameter 'name' is required")
	}
	p := helper.ParseFiber(c, "id", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.FindByFullName(c.UserContext(), name, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

// POST /users/search
func (ctrl *UserController) Search(c *fiber.Ctx) error {
	var body dto.UserSearchDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	p := helper.ParseFiber(c, "id", "asc", ctrl.PageOpts)
	list, meta, err := ctrl.svc.Search(c.UserContext(), body, p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

func bootstrapProfile() *dto.UserDTO {
	d := &dto.UserDTO{}
	d.SetID(authHelper.AdminUserID)
	d.Login = crud.Ptr(configs.AdminLogin)
	d.RoleName = crud.Ptr(constants.RoleAdmin)
	return d
}
