package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/config"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func makeApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", Authenticate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})
	app.Get("/owner-only", Authenticate, OwnerRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})
	return app
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := models.JwtClaims{
		Username: "tester",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	assert.NoError(t, err)
	return token
}

func TestAuthenticateMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleManager))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOwnerRequiredRejectsManager(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp()

	req := httptest.NewRequest(http.MethodGet, "/owner-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleManager))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOwnerRequiredAllowsOwner(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	app := makeApp()

	req := httptest.NewRequest(http.MethodGet, "/owner-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleOwner))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
