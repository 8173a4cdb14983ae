package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"artspace_backend/internals/helpers/errs"
)

// Error envelope: {code, status, message}. Success responses return the
// transfer object (or list) directly.

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// ValidationError renders validator.v10 field errors as a 400.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fields)
}

// JsonServiceError maps the service error taxonomy to HTTP statuses.
// Unknown errors are logged and surfaced as an opaque 500.
func JsonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidArgument):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return Error(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return Error(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// JsonList wraps a paginated result.
func JsonList(c *fiber.Ctx, data interface{}, meta Meta) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": meta,
	})
}
