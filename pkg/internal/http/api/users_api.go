package api

import (
	"time"

	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/http/exts"
	"chronicle/pkg/internal/models"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func getUser(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("account"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(account)
}

func listUserPost(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	account, err := services.GetAccountWithName(c.Params("account"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	viewer := currentViewer(c)

	// The owner gets everything they ever wrote, drafts and scheduled
	// posts included; everyone else only the public subset.
	var tx = database.C
	if viewer == nil || viewer.ID != account.ID {
		tx = services.FilterPostPublic(tx, time.Now())
	}
	tx = services.FilterPostWithAuthor(tx, account)

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, services.PostsPerPage, (page-1)*services.PostsPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count":   count,
		"data":    items,
		"profile": account,
	})
}

func editMyProfile(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Nick  string `json:"nick" validate:"required,max=256"`
		Email string `json:"email" validate:"omitempty,email"`
		Bio   string `json:"bio"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EditAccount(user, data.Nick, data.Email, data.Bio); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(profilePath(user.Name), fiber.StatusSeeOther)
}
