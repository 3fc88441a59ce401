package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance", auth.AuthMiddleware,
		auth.RequireRoles(auth.MsgAdminOrDirector, models.RoleAdmin, models.RoleDirector))

	api.Post("/", RecordAttendanceAPI)
	api.Get("/today", GetAttendanceTodayAPI)
	api.Get("/all", GetAllAttendanceAPI)
}
