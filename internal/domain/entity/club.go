package entity

import (
	"strings"
	"time"

	"golf-api/internal/domain/distance"
)

// ClubName is one of the clubs a golfer can carry in the bag
type ClubName string

const (
	Driver   ClubName = "Driver"
	Wood3    ClubName = "3 wood"
	Wood5    ClubName = "5 wood"
	Wood7    ClubName = "7 wood"
	Iron1    ClubName = "1i"
	Iron2    ClubName = "2i"
	Iron3    ClubName = "3i"
	Iron4    ClubName = "4i"
	Iron5    ClubName = "5i"
	Iron6    ClubName = "6i"
	Iron7    ClubName = "7i"
	Iron8    ClubName = "8i"
	Iron9    ClubName = "9i"
	Pitching ClubName = "PW"
	Wedge50  ClubName = "50 degree"
	Wedge52  ClubName = "52 degree"
	Wedge54  ClubName = "54 degree"
	Wedge56  ClubName = "56 degree"
	Wedge58  ClubName = "58 degree"
	Wedge60  ClubName = "60 degree"
)

// ClubNames lists the catalogue from the longest to the shortest club
var ClubNames = []ClubName{
	Driver, Wood3, Wood5, Wood7,
	Iron1, Iron2, Iron3, Iron4, Iron5, Iron6, Iron7, Iron8, Iron9,
	Pitching, Wedge50, Wedge52, Wedge54, Wedge56, Wedge58, Wedge60,
}

// ParseClubName matches name against the catalogue ignoring surrounding whitespace
func ParseClubName(name string) (ClubName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &distance.ValidationError{Field: "club_name"}
	}
	for _, candidate := range ClubNames {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}

	allowed := make([]string, len(ClubNames))
	for i, candidate := range ClubNames {
		allowed[i] = string(candidate)
	}
	return "", &distance.ValidationError{Field: "club_name", Value: name, Allowed: allowed}
}

// Club is a club in a user's bag with its carry distance in yards
type Club struct {
	ID        string    `json:"id"`
	ClubName  ClubName  `json:"club_name"`
	Distance  int       `json:"distance"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
