package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		posts := api.Group("/posts")
		{
			posts.Get("/", listPost)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)

			posts.Post("/:postId/comments", createComment)
			posts.Put("/:postId/comments/:commentId", editComment)
			posts.Delete("/:postId/comments/:commentId", deleteComment)
		}

		categories := api.Group("/categories")
		{
			categories.Get("/", listCategory)
			categories.Get("/:categorySlug/posts", listCategoryPost)
		}

		users := api.Group("/users")
		{
			users.Put("/me", editMyProfile)
			users.Get("/:account", getUser)
			users.Get("/:account/posts", listUserPost)
		}
	}
}
