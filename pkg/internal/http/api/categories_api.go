package api

import (
	"time"

	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func listCategory(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	categories, err := services.ListCategory(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(categories)
}

func listCategoryPost(c *fiber.Ctx) error {
	slug := c.Params("categorySlug")
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	// An unpublished category and a missing one answer the same way.
	category, err := services.GetPublishedCategory(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	tx := services.FilterPostWithCategory(
		services.FilterPostPublic(database.C, time.Now()),
		category,
	)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, services.PostsPerPage, (page-1)*services.PostsPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count":    count,
		"data":     items,
		"category": category,
	})
}
