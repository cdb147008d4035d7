package db

import (
	"time"

	"golf-api/internal/domain/entity"
)

// ClubRecord is the gorm mapping of the golf_clubs table
type ClubRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	ClubName  string `gorm:"size:20;not null"`
	Distance  int    `gorm:"not null"`
	UserID    string `gorm:"size:36;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClubRecord) TableName() string {
	return "golf_clubs"
}

func (r ClubRecord) toEntity() entity.Club {
	return entity.Club{
		ID:        r.ID,
		ClubName:  entity.ClubName(r.ClubName),
		Distance:  r.Distance,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func clubRecordOf(club entity.Club) ClubRecord {
	return ClubRecord{
		ID:        club.ID,
		ClubName:  string(club.ClubName),
		Distance:  club.Distance,
		UserID:    club.UserID,
		CreatedAt: club.CreatedAt,
		UpdatedAt: club.UpdatedAt,
	}
}

// UserRecord is the gorm mapping of the users table
type UserRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	Email        string `gorm:"size:254"`
	PasswordHash string `gorm:"size:100;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (UserRecord) TableName() string {
	return "users"
}

func (r UserRecord) toEntity() entity.User {
	return entity.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    r.CreatedAt,
	}
}

// Records lists every gorm model for schema migration
func Records() []any {
	return []any{&UserRecord{}, &ClubRecord{}}
}
