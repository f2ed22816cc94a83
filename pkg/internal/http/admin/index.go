package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Post("/categories", createCategory)
		admin.Put("/categories/:categoryId", editCategory)
		admin.Delete("/categories/:categoryId", deleteCategory)

		admin.Post("/locations", createLocation)
		admin.Put("/locations/:locationId", editLocation)
		admin.Delete("/locations/:locationId", deleteLocation)
	}
}
