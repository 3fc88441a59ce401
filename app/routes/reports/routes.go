package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	director := auth.RequireRoles(auth.MsgDirectorOnly, models.RoleDirector)

	app.Get("/api/absent_students/today", auth.AuthMiddleware, director, GetAbsentStudentsTodayAPI)
	app.Get("/api/absent_summary", auth.AuthMiddleware, director, GetAbsentSummaryAPI)
	app.Get("/api/generate_monthly_report", auth.AuthMiddleware, director, GenerateMonthlyReportAPI)
}
