package admin

import (
	"chronicle/pkg/internal/http/exts"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase,max=64"`
		Title       string `json:"title" validate:"required,max=256"`
		Description string `json:"description"`
		IsPublished bool   `json:"is_published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.NewCategory(data.Slug, data.Title, data.Description, data.IsPublished)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func editCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("categoryId", 0)

	var data struct {
		Slug        string `json:"slug" validate:"required,lowercase,max=64"`
		Title       string `json:"title" validate:"required,max=256"`
		Description string `json:"description"`
		IsPublished bool   `json:"is_published"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	category, err = services.EditCategory(category, data.Slug, data.Title, data.Description, data.IsPublished)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(category)
}

func deleteCategory(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}
	id, _ := c.ParamsInt("categoryId", 0)

	category, err := services.GetCategoryWithID(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteCategory(category); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
