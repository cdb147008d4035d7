package model

import "golf-api/internal/domain/entity"

type ClubRequestDTO struct {
	ClubName string `json:"club_name" example:"7i"`
	Distance int    `json:"distance" example:"150"`
}

type ProfileDTO struct {
	UserID   string        `json:"user_id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Clubs    []entity.Club `json:"golf_clubs"`
}
