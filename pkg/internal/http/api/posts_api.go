package api

import (
	"fmt"
	"time"

	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/http/exts"
	"chronicle/pkg/internal/models"
	"chronicle/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func currentViewer(c *fiber.Ctx) *models.Account {
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		return &user
	}
	return nil
}

func postDetailPath(id uint) string {
	return fmt.Sprintf("/api/posts/%d", id)
}

func profilePath(name string) string {
	return fmt.Sprintf("/api/users/%s", name)
}

func listPost(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	tx := services.FilterPostPublic(database.C, time.Now())

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, services.PostsPerPage, (page-1)*services.PostsPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPostWithViewer(currentViewer(c), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item.Comments, err = services.ListCommentWithPost(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	item.CommentCount = int64(len(item.Comments))

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Title       string     `json:"title" validate:"required,max=256"`
		Text        string     `json:"text" validate:"required"`
		Image       string     `json:"image"`
		PubDate     *time.Time `json:"pub_date"`
		IsPublished *bool      `json:"is_published"`
		CategoryID  *uint      `json:"category_id"`
		LocationID  *uint      `json:"location_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Title:       data.Title,
		Text:        data.Text,
		Image:       data.Image,
		IsPublished: true,
		CategoryID:  data.CategoryID,
		LocationID:  data.LocationID,
	}
	if data.PubDate != nil {
		item.PubDate = *data.PubDate
	}
	if data.IsPublished != nil {
		item.IsPublished = *data.IsPublished
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(profilePath(user.Name), fiber.StatusSeeOther)
}

func editPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Not being the author is not an error here, just a bounce back to
	// the read view with nothing written.
	if !services.CanMutate(currentViewer(c), item) {
		return c.Redirect(postDetailPath(item.ID), fiber.StatusSeeOther)
	}

	var data struct {
		Title       string     `json:"title" validate:"required,max=256"`
		Text        string     `json:"text" validate:"required"`
		Image       string     `json:"image"`
		PubDate     *time.Time `json:"pub_date"`
		IsPublished *bool      `json:"is_published"`
		CategoryID  *uint      `json:"category_id"`
		LocationID  *uint      `json:"location_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Title = data.Title
	item.Text = data.Text
	item.Image = data.Image
	item.CategoryID = data.CategoryID
	item.Category = nil
	item.LocationID = data.LocationID
	item.Location = nil
	if data.PubDate != nil {
		item.PubDate = *data.PubDate
	}
	if data.IsPublished != nil {
		item.IsPublished = *data.IsPublished
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postDetailPath(item.ID), fiber.StatusSeeOther)
}

func deletePost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	viewer := currentViewer(c)
	if !services.CanMutate(viewer, item) {
		return c.Redirect(postDetailPath(item.ID), fiber.StatusSeeOther)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(profilePath(viewer.Name), fiber.StatusSeeOther)
}
