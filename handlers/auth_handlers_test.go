package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/config"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func loginApp() *fiber.App {
	config.AppConfig.JWTSecret = "test-secret"
	InitMockUsers()

	app := fiber.New()
	app.Post("/api/auth/login", HandleLogin)
	return app
}

func postLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()
	body, err := json.Marshal(models.LoginRequest{Username: username, Password: password})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestLoginOwner(t *testing.T) {
	app := loginApp()

	resp := postLogin(t, app, "owner", "owner123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, models.RoleOwner, out.Role)
	assert.Empty(t, out.Store)

	// The token carries the username and role as claims.
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(out.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "owner", claims.Username)
	assert.Equal(t, models.RoleOwner, claims.Role)
}

func TestLoginManagerCarriesStore(t *testing.T) {
	app := loginApp()

	resp := postLogin(t, app, "downtown", "downtown123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, models.RoleManager, out.Role)
	assert.Equal(t, "Downtown Mart", out.Store)
}

func TestLoginWrongPassword(t *testing.T) {
	app := loginApp()

	resp := postLogin(t, app, "owner", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app := loginApp()

	resp := postLogin(t, app, "nobody", "owner123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
