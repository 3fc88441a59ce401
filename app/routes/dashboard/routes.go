package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, DashboardPage)
}

// DashboardPage renders the page matching the principal's role.
func DashboardPage(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	switch principal.Role {
	case models.RoleAdmin:
		return c.Render("admin_dashboard", fiber.Map{"Username": principal.Username})
	case models.RoleDirector:
		return c.Render("director_dashboard", fiber.Map{"Username": principal.Username})
	}
	return fiber.NewError(fiber.StatusForbidden, auth.MsgForbidden)
}
