package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"registration/config"
)

// Paths reachable without a token: home page, login page, login submission
// and static assets.
var openPaths = map[string]struct{}{
	"/":             {},
	"/login":        {},
	"/custom-login": {},
}

// TokenAuth gates every route outside the allow-list behind the shared
// secret: requests must carry "Authorization: Bearer <token>" exactly
// matching the configured SECURITY_TOKEN. Single static token, no expiry,
// no per-user identity.
func TokenAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if _, open := openPaths[path]; open || strings.HasPrefix(path, "/static") {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid Authorization header",
			})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.SecurityToken)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		return c.Next()
	}
}
