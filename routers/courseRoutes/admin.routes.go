package courseRoutes

import (
	controllers "shattak/controllers/course"
	"shattak/middleware"
	validators "shattak/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the admin course management routes.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.AdminJWTMiddleware, validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.AdminJWTMiddleware, validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.AdminJWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", middleware.AdminJWTMiddleware, validators.AdminList(), controllers.AdminListCourses)
	adminGroup.Get("/:id", middleware.AdminJWTMiddleware, validators.CourseID(), controllers.AdminGetCourse)

	// Draft sessions
	draftGroup := app.Group("/admin/draft")
	draftGroup.Post("/open", middleware.AdminJWTMiddleware, validators.OpenDraft(), controllers.OpenDraft)
	draftGroup.Get("/:draftId", middleware.AdminJWTMiddleware, validators.DraftID(), controllers.GetDraft)
	draftGroup.Patch("/:draftId/field", middleware.AdminJWTMiddleware, validators.DraftID(), validators.SetDraftField(), controllers.SetDraftField)
	// reset/submit before the :collection wildcard so they are not shadowed
	draftGroup.Post("/:draftId/reset", middleware.AdminJWTMiddleware, validators.DraftID(), controllers.ResetDraft)
	draftGroup.Post("/:draftId/submit", middleware.AdminJWTMiddleware, validators.DraftID(), validators.SubmitDraft(), controllers.SubmitDraft)
	draftGroup.Post("/:draftId/:collection", middleware.AdminJWTMiddleware, validators.DraftID(), validators.DraftCollection(), controllers.AppendDraftRow)
	draftGroup.Patch("/:draftId/:collection/:index", middleware.AdminJWTMiddleware, validators.DraftID(), validators.DraftRow(), controllers.UpdateDraftRow)
	draftGroup.Delete("/:draftId/:collection/:index", middleware.AdminJWTMiddleware, validators.DraftID(), validators.DraftRow(), controllers.RemoveDraftRow)
	draftGroup.Delete("/:draftId", middleware.AdminJWTMiddleware, validators.DraftID(), controllers.DiscardDraft)

	// Uploads
	uploadGroup := app.Group("/admin/upload")
	uploadGroup.Post("/image", middleware.AdminJWTMiddleware, controllers.AdminUploadImage)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.AdminJWTMiddleware, controllers.AdminDashboard)
}
