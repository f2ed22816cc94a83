package api_test

import (
	"fmt"
	"testing"
	"time"

	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedComment(t *testing.T, author models.Account, post models.Post, text string) models.Comment {
	t.Helper()

	item := models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, database.C.Create(&item).Error)
	return item
}

func TestCreateCommentStampsAuthor(t *testing.T) {
	app := newTestApp(t)

	alice := seedAccount(t, testUsername(t, "alice"))
	bobName := testUsername(t, "bob")
	bob := seedAccount(t, bobName)
	post := seedPost(t, alice, true, time.Now().Add(-time.Hour))

	// The payload tries to claim another author; only text is honored.
	req := jsonRequest("POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), fiber.Map{
		"text":      "hello",
		"author_id": alice.ID,
	})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, bobName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), resp.Header.Get(fiber.HeaderLocation))

	var item models.Comment
	require.NoError(t, database.C.Where("post_id = ?", post.ID).First(&item).Error)
	assert.Equal(t, bob.ID, item.AuthorID)
}

func TestCreateCommentMissingPost(t *testing.T) {
	app := newTestApp(t)

	name := testUsername(t, "alice")
	seedAccount(t, name)

	req := jsonRequest("POST", "/api/posts/999/comments", fiber.Map{"text": "into the void"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, name))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateCommentAnonymous(t *testing.T) {
	app := newTestApp(t)

	alice := seedAccount(t, testUsername(t, "alice"))
	post := seedPost(t, alice, true, time.Now().Add(-time.Hour))

	resp, err := app.Test(jsonRequest("POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), fiber.Map{"text": "hi"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEditCommentNonOwnerRedirects(t *testing.T) {
	app := newTestApp(t)

	aliceName := testUsername(t, "alice")
	alice := seedAccount(t, aliceName)
	bob := seedAccount(t, testUsername(t, "bob"))
	post := seedPost(t, alice, true, time.Now().Add(-time.Hour))
	comment := seedComment(t, bob, post, "original")

	// The post's author still may not touch someone else's comment.
	req := jsonRequest("PUT", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), fiber.Map{"text": "overwritten"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, aliceName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), resp.Header.Get(fiber.HeaderLocation))

	var item models.Comment
	require.NoError(t, database.C.Where("id = ?", comment.ID).First(&item).Error)
	assert.Equal(t, "original", item.Text)
}

func TestEditCommentOwner(t *testing.T) {
	app := newTestApp(t)

	alice := seedAccount(t, testUsername(t, "alice"))
	bobName := testUsername(t, "bob")
	bob := seedAccount(t, bobName)
	post := seedPost(t, alice, true, time.Now().Add(-time.Hour))
	comment := seedComment(t, bob, post, "original")

	req := jsonRequest("PUT", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), fiber.Map{"text": "edited"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, bobName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var item models.Comment
	require.NoError(t, database.C.Where("id = ?", comment.ID).First(&item).Error)
	assert.Equal(t, "edited", item.Text)
}

func TestDeleteCommentOwner(t *testing.T) {
	app := newTestApp(t)

	alice := seedAccount(t, testUsername(t, "alice"))
	bobName := testUsername(t, "bob")
	bob := seedAccount(t, bobName)
	post := seedPost(t, alice, true, time.Now().Add(-time.Hour))
	comment := seedComment(t, bob, post, "going away")

	req := jsonRequest("DELETE", fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, bobName))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var count int64
	require.NoError(t, database.C.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
