package model

import "time"

type RegisterRequestDTO struct {
	Username string `json:"username" example:"golfer"`
	Email    string `json:"email" example:"golfer@example.com"`
	Password string `json:"password" example:"secret"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"golfer"`
	Password string `json:"password" example:"secret"`
}

type RefreshRequestDTO struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// TokenDTO is the login and refresh answer. The refresh fields are empty on a refresh.
type TokenDTO struct {
	AccessToken      string     `json:"access_token"`
	TokenType        string     `json:"token_type"`
	ExpiresAt        time.Time  `json:"expires_at"`
	RefreshToken     string     `json:"refresh_token,omitempty"`
	RefreshExpiresAt *time.Time `json:"refresh_expires_at,omitempty"`
}

// Principal identifies the caller of an authenticated request
type Principal struct {
	UserID  string
	IsAdmin bool
}
