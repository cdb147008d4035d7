package db

import (
	"context"

	"golf-api/internal/domain/entity"
)

type UserGateway interface {
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context, page int, size int) ([]entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}
