package courseRoutes

import (
	controllers "shattak/controllers/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", controllers.ListCatalog)
	courseGroup.Get("/:id", controllers.GetCatalogCourse)
}
