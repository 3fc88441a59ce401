package auth

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
)

var validate = validator.New()

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `form:"username" validate:"required"`
		Password string `form:"password" validate:"required"`
	}

	req := LoginRequest{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, MsgBadCredentials)
	}

	users, err := database.GetUsers(config.GetStore())
	if err != nil {
		return err
	}

	user, ok := users[req.Username]
	if !ok || user.Password != req.Password {
		return fiber.NewError(fiber.StatusUnauthorized, MsgBadCredentials)
	}

	// The cookie carries the stored role, never anything the client claimed.
	value, err := Codec().Issue(req.Username, user.Role)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:  "auth",
		Value: value,
		Path:  "/",
	})

	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
