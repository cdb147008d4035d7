package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"golf-api/internal/domain/entity"
)

type GormClubGateway struct {
	DB *gorm.DB
}

var _ ClubGateway = (*GormClubGateway)(nil)

func NewGormClubGateway(db *gorm.DB) *GormClubGateway {
	return &GormClubGateway{DB: db}
}

func (gateway *GormClubGateway) FindByUserID(ctx context.Context, userID string) ([]entity.Club, error) {
	var records []ClubRecord
	err := gateway.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	clubs := make([]entity.Club, 0, len(records))
	for _, record := range records {
		clubs = append(clubs, record.toEntity())
	}
	return clubs, nil
}

func (gateway *GormClubGateway) FindByID(ctx context.Context, userID string, id string) (*entity.Club, error) {
	var record ClubRecord
	err := gateway.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find club: %w", err)
	}

	club := record.toEntity()
	return &club, nil
}

func (gateway *GormClubGateway) Create(ctx context.Context, club entity.Club) (*entity.Club, error) {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}

	record := clubRecordOf(club)
	if err := gateway.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	created := record.toEntity()
	return &created, nil
}

func (gateway *GormClubGateway) Update(ctx context.Context, club entity.Club) (*entity.Club, error) {
	result := gateway.DB.WithContext(ctx).
		Model(&ClubRecord{}).
		Where("id = ? AND user_id = ?", club.ID, club.UserID).
		Updates(map[string]any{
			"club_name": string(club.ClubName),
			"distance":  club.Distance,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return gateway.FindByID(ctx, club.UserID, club.ID)
}

func (gateway *GormClubGateway) Delete(ctx context.Context, userID string, id string) error {
	result := gateway.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ClubRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete club: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
