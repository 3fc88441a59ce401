package catalog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/routes/auth"
)

// SetupCatalogRoutes registers the read-only course/group/student listings.
func SetupCatalogRoutes(app *fiber.App) {
	api := app.Group("/api", auth.AuthMiddleware)

	staff := auth.RequireRoles(auth.MsgAdminOrDirector, models.RoleAdmin, models.RoleDirector)
	api.Get("/courses", staff, GetCoursesAPI)
	api.Get("/groups", staff, GetGroupsAPI)
	api.Get("/students", staff, GetStudentsAPI)
	api.Get("/students/all",
		auth.RequireRoles(auth.MsgForbidden, models.RoleAdmin, models.RoleDirector),
		GetAllStudentsAPI)
}
