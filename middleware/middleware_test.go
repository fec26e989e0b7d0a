package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"registration/config"
)

func newGatedApp() *fiber.App {
	cfg := &config.Config{SecurityToken: "secret-token"}

	app := fiber.New()
	app.Use(TokenAuth(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("home") })
	app.Post("/custom-login", func(c *fiber.Ctx) error { return c.SendString("login") })
	app.Get("/api/students", func(c *fiber.Ctx) error { return c.SendString("students") })
	return app
}

func TestTokenAuth(t *testing.T) {
	app := newGatedApp()

	cases := []struct {
		name       string
		method     string
		path       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "GET", "/api/students", "", fiber.StatusUnauthorized},
		{"wrong scheme", "GET", "/api/students", "Token secret-token", fiber.StatusUnauthorized},
		{"wrong token", "GET", "/api/students", "Bearer nope", fiber.StatusUnauthorized},
		{"token with padding", "GET", "/api/students", "Bearer secret-token ", fiber.StatusUnauthorized},
		{"valid token", "GET", "/api/students", "Bearer secret-token", fiber.StatusOK},
		{"home is open", "GET", "/", "", fiber.StatusOK},
		{"login submission is open", "POST", "/custom-login", "", fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestTokenAuthRejectsBeforeHandlers(t *testing.T) {
	app := newGatedApp()

	handlerHit := false
	app.Get("/api/probe", func(c *fiber.Ctx) error {
		handlerHit = true
		return c.SendString("probe")
	})

	req := httptest.NewRequest("GET", "/api/probe", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if handlerHit {
		t.Fatal("handler must not run for an unauthorized request")
	}
}
