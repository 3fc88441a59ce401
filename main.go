package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/routes/attendance"
	"github.com/Anushervon04/SRM/app/routes/auth"
	"github.com/Anushervon04/SRM/app/routes/catalog"
	"github.com/Anushervon04/SRM/app/routes/dashboard"
	"github.com/Anushervon04/SRM/app/routes/reports"
	"github.com/Anushervon04/SRM/app/services"
)

// errorHandler serializes every error as {"detail": message} with its status
// code, the wire shape clients of the original service expect.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
}

func main() {
	// Initialize store and directories
	config.Init()

	// Start background scheduler
	services.StartScheduler(config.GetStore())

	// Initialize template engine
	engine := html.New("./templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Setup auth routes (login page and POST /login)
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup catalog routes
	catalog.SetupCatalogRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	// Start server
	log.Println("Server starting on", config.AppConfig.Addr)
	log.Fatal(app.Listen(config.AppConfig.Addr))
}
