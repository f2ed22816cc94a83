package api

import (
	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/http/exts"
	"chronicle/pkg/internal/models"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	postId, _ := c.ParamsInt("postId", 0)

	post, err := services.GetPost(database.C, uint(postId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewComment(user, post, data.Text); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postDetailPath(post.ID), fiber.StatusSeeOther)
}

func editComment(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId", 0)
	commentId, _ := c.ParamsInt("commentId", 0)

	item, err := services.GetComment(uint(commentId), uint(postId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Guarded against the comment's author, not the post's.
	if !services.CanMutate(currentViewer(c), item) {
		return c.Redirect(postDetailPath(item.PostID), fiber.StatusSeeOther)
	}

	var data struct {
		Text string `json:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	if _, err := services.EditComment(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postDetailPath(item.PostID), fiber.StatusSeeOther)
}

func deleteComment(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId", 0)
	commentId, _ := c.ParamsInt("commentId", 0)

	item, err := services.GetComment(uint(commentId), uint(postId))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if !services.CanMutate(currentViewer(c), item) {
		return c.Redirect(postDetailPath(item.PostID), fiber.StatusSeeOther)
	}

	if err := services.DeleteComment(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(postDetailPath(item.PostID), fiber.StatusSeeOther)
}
