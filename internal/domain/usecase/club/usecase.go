package club

import (
	"context"
	"errors"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
)

var (
	// ErrClubNotFound is returned when the club does not exist or belongs to another user
	ErrClubNotFound = errors.New("club not found")
	// ErrUserNotFound is returned when the authenticated user no longer exists
	ErrUserNotFound = errors.New("user not found")
)

type UseCase interface {
	// GetProfile returns the user with the clubs of the bag in creation order
	GetProfile(ctx context.Context, userID string) (*model.ProfileDTO, error)

	// ListClubDistances returns the clubs of the bag as calculator input
	ListClubDistances(ctx context.Context, userID string) ([]distance.ClubDistance, error)

	AddClub(ctx context.Context, userID string, dto model.ClubRequestDTO) (*entity.Club, error)
	UpdateClub(ctx context.Context, userID string, clubID string, dto model.ClubRequestDTO) (*entity.Club, error)
	RemoveClub(ctx context.Context, userID string, clubID string) error
}
