package admin

import (
	"chronicle/pkg/internal/http/exts"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createLocation(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Name        string `json:"name" validate:"required,max=256"`
		IsPublished bool   `json:"is_published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	location, err := services.NewLocation(data.Name, data.IsPublished)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(location)
}

func editLocation(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("locationId", 0)

	var data struct {
		Name        string `json:"name" validate:"required,max=256"`
		IsPublished bool   `json:"is_published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	location, err := services.GetLocationWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	location, err = services.EditLocation(location, data.Name, data.IsPublished)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(location)
}

func deleteLocation(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("locationId", 0)

	location, err := services.GetLocationWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteLocation(location); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
