package delivery

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"registration/config"
)

type pageHandler struct {
	cfg *config.Config
}

// NewPageHandler serves the minimal home and login pages on the allow-listed
// paths. Real page rendering lives in the frontend; these exist so the
// unauthenticated surface answers something sensible.
func NewPageHandler(app *fiber.App, cfg *config.Config) {
	handler := &pageHandler{
		cfg: cfg,
	}

	app.Get("/", handler.Home)
	app.Get("/login", handler.LoginPage)
}

func (h *pageHandler) Home(c *fiber.Ctx) error {
	return c.Type("html").SendString(fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>%s</title></head><body><h1>%s</h1><p>API under /api/students (Bearer token required).</p></body></html>",
		h.cfg.AppHeading, h.cfg.AppHeading,
	))
}

func (h *pageHandler) LoginPage(c *fiber.Ctx) error {
	return c.Type("html").SendString(
		"<!DOCTYPE html><html><head><title>Login</title></head><body><h1>Login</h1><p>POST {username, password} to /custom-login to obtain the API token.</p></body></html>",
	)
}
