package delivery

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"registration/config"
	"registration/domain"
)

type authHandler struct {
	cfg *config.Config
}

// NewAuthHandler registers the unauthenticated login endpoint. A successful
// login against the configured admin credentials hands back the shared
// security token all API clients must present.
func NewAuthHandler(app *fiber.App, cfg *config.Config) {
	handler := &authHandler{
		cfg: cfg,
	}

	app.Post("/custom-login", handler.Login)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.LogRequest(fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		config.LogRequest(fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password required",
		})
	}

	if req.Username != h.cfg.AdminUsername || !passwordMatches(h.cfg.AdminPassword, req.Password) {
		config.LogRequest(fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	config.LogRequest(fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
		Token:    h.cfg.SecurityToken,
		Username: req.Username,
	})
}

// passwordMatches accepts the configured admin password either as a bcrypt
// hash or as plaintext compared in constant time.
func passwordMatches(configured, supplied string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
