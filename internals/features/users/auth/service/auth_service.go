package service

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/crud"
	authDTO "artspace_backend/internals/features/users/auth/dto"
	repository "artspace_backend/internals/features/users/auth/repository"
	userDTO "artspace_backend/internals/features/users/user/dto"
	userModel "artspace_backend/internals/features/users/user/model"
	userService "artspace_backend/internals/features/users/user/service"
	helper "artspace_backend/internals/helpers"
	"artspace_backend/internals/helpers/errs"
)

var validate = validator.New()

// Register creates a new account with the default USER role and returns it
// with 201. A taken login or email answers 409 without touching the table.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("login = ? OR email = ?", req.Login, req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonServiceError(c, err)
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Login or email already registered")
	}

	d := &userDTO.UserDTO{
		Login:     crud.Ptr(req.Login),
		Password:  crud.Ptr(req.Password),
		Email:     crud.Ptr(req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	created, err := userService.NewUserService(db).Create(c.UserContext(), d)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	log.Printf("[INFO] registered user %s", req.Login)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Login verifies the credential and plants the HTTP-only session cookie. The
// failure message never says whether the login or the password was wrong.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cred, err := repository.LookupCredential(db, req.Login)
	if err != nil {
		// Only an unknown login is a credential failure; anything else is an
		// infrastructure error and must not masquerade as 401.
		if errors.Is(err, errs.ErrNotFound) {
			log.Printf("[WARN] failed login attempt for %q", req.Login)
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid login or password")
		}
		return helper.JsonServiceError(c, err)
	}
	if !cred.CheckPassword(req.Password) {
		log.Printf("[WARN] failed login attempt for %q", req.Login)
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid login or password")
	}

	token, exp, err := CreateToken(cred)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     configs.JWTCookieName,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user_id": cred.UserID,
		"login":   cred.Login,
		"role":    cred.Role,
	})
}

// Logout expires the session cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     configs.JWTCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}
