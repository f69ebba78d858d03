package handlers

import (
	"log"
	"time"

	"app/config"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// The login surface is a demo role selector. Accounts live in memory only;
// nothing about them is persisted.
var mockUsers map[string]models.MockUser

// InitMockUsers seeds the demo accounts. Called once at startup.
func InitMockUsers() {
	seed := []struct {
		username, password, role, store string
	}{
		{"owner", "owner123", models.RoleOwner, ""},
		{"downtown", "downtown123", models.RoleManager, "Downtown Mart"},
		{"riverside", "riverside123", models.RoleManager, "Riverside Convenience"},
	}

	mockUsers = make(map[string]models.MockUser, len(seed))
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		mockUsers[u.username] = models.MockUser{
			Username:     u.username,
			PasswordHash: hash,
			Role:         u.role,
			Store:        u.store,
		}
	}
}

// HandleLogin authenticates a demo account and returns a JWT.
// POST /api/auth/login
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	user, ok := mockUsers[req.Username]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}

	token, err := createJWT(user)
	if err != nil {
		log.Printf("Error creating JWT for %s: %v", user.Username, err)
		return serverError(c, "Could not sign token")
	}

	return c.JSON(models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        user.Role,
		Store:       user.Store,
	})
}

func createJWT(user models.MockUser) (string, error) {
	claims := models.JwtClaims{
		Username: user.Username,
		Role:     user.Role,
		Store:    user.Store,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
