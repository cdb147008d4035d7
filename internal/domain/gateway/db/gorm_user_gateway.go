package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"golf-api/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	record := UserRecord{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
	}
	if err := gateway.DB.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created := record.toEntity()
	return &created, nil
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return gateway.findOne(ctx, "id = ?", id)
}

func (gateway *GormUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return gateway.findOne(ctx, "username = ?", username)
}

func (gateway *GormUserGateway) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var record UserRecord
	if err := gateway.DB.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user := record.toEntity()
	return &user, nil
}

// FindAll returns a zero based page of users ordered by username
func (gateway *GormUserGateway) FindAll(ctx context.Context, page int, size int) ([]entity.User, error) {
	if page < 0 {
		page = 0
	}

	var records []UserRecord
	err := gateway.DB.WithContext(ctx).
		Order("username ASC").
		Offset(page * size).
		Limit(size).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]entity.User, 0, len(records))
	for _, record := range records {
		users = append(users, record.toEntity())
	}
	return users, nil
}

func (gateway *GormUserGateway) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := gateway.DB.WithContext(ctx).Model(&UserRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
