package models

import "github.com/golang-jwt/jwt/v4"

// --- JWT & Auth ---

// The login surface is a mock role selector: users are seeded in memory,
// nothing is persisted, and analytics read paths do not require a token.

type JwtClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Store    string `json:"store,omitempty"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Store       string `json:"store,omitempty"`
}

// MockUser is an in-memory demo account. Owners see every store; Managers
// are tied to a single one.
type MockUser struct {
	Username     string
	PasswordHash []byte
	Role         string
	Store        string
}

// User roles.
const (
	RoleOwner   = "Owner"
	RoleManager = "Manager"
)
