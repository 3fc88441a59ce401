package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

// Localized auth messages, matching the deployed system.
const (
	MsgNotAuthenticated = "Not authenticated"
	MsgInvalidAuth      = "Invalid auth"
	MsgBadCredentials   = "Ном ё пароли нодуруст"
	MsgForbidden        = "Дастрасӣ манъ аст"
	MsgAdminOrDirector  = "Танҳо барои админ ва директор дастрас аст"
	MsgDirectorOnly     = "Танҳо барои директор дастрас аст"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", ShowLoginPage)
	app.Post("/login", LoginAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// AuthMiddleware decodes the auth cookie and checks it against the users
// collection: the username must exist and its stored role must equal the
// claimed role. The principal ends up in c.Locals("principal").
func AuthMiddleware(c *fiber.Ctx) error {
	value := c.Cookies("auth")
	if value == "" {
		return fiber.NewError(fiber.StatusUnauthorized, MsgNotAuthenticated)
	}

	username, role, err := Codec().Decode(value)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, MsgInvalidAuth)
	}

	users, err := database.GetUsers(config.GetStore())
	if err != nil {
		return err
	}
	user, ok := users[username]
	if !ok || user.Role != role {
		return fiber.NewError(fiber.StatusUnauthorized, MsgInvalidAuth)
	}

	c.Locals("principal", &models.Principal{Username: username, Role: role})
	return c.Next()
}

// RequireRoles rejects principals whose role is not in the allow-list. The
// message is per-route because the deployed system localizes each gate
// differently.
func RequireRoles(message string, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := CurrentPrincipal(c)
		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}

// CurrentPrincipal returns the authenticated principal. Only valid behind
// AuthMiddleware.
func CurrentPrincipal(c *fiber.Ctx) *models.Principal {
	return c.Locals("principal").(*models.Principal)
}
