package db

import (
	"context"
	"errors"

	"golf-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the lookup
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects the write
	ErrDuplicate = errors.New("record already exists")
)

// ClubGateway stores the clubs of each user. Every lookup is scoped by owner.
type ClubGateway interface {
	FindByUserID(ctx context.Context, userID string) ([]entity.Club, error)
	FindByID(ctx context.Context, userID string, id string) (*entity.Club, error)
	Create(ctx context.Context, club entity.Club) (*entity.Club, error)
	Update(ctx context.Context, club entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, userID string, id string) error
}
