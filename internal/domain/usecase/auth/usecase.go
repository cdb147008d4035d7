package auth

import (
	"context"
	"errors"

	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type UseCase interface {
	// Register creates a user with a bcrypt hashed password
	Register(ctx context.Context, dto model.RegisterRequestDTO) (*entity.User, error)

	// Login checks the credentials and issues a signed access token and refresh token
	Login(ctx context.Context, dto model.LoginRequestDTO) (*model.TokenDTO, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, dto model.RefreshRequestDTO) (*model.TokenDTO, error)

	// ParseToken validates an access token and returns its principal
	ParseToken(token string) (*model.Principal, error)

	// ListUsers returns a zero based page of users
	ListUsers(ctx context.Context, page int, size int) (*model.Page[entity.User], error)
}
