package exts

import (
	"errors"
	"fmt"
	"strings"

	"chronicle/pkg/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// BindAndValidate decodes the request body and reports failures per field,
// leaving the stored entity untouched.
func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := validation.Struct(out); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			messages := lo.Map(fields, func(item validator.FieldError, index int) string {
				return fmt.Sprintf("%s: %s", item.Field(), item.Tag())
			})
			return fiber.NewError(fiber.StatusBadRequest, strings.Join(messages, "; "))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(models.Account); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return nil
}

func EnsureAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.Account)
	if !ok || !user.IsAdmin {
		return fiber.NewError(fiber.StatusForbidden, "admin required")
	}
	return nil
}
