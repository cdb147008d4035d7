package club

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/gateway/db"
	"golf-api/internal/domain/model"
	"golf-api/pkg/log"
	"golf-api/pkg/msg"
	"golf-api/pkg/util/numberutils"
)

var errNonPositiveDistance = errors.New("distance must be a positive number of yards")

type clubUseCase struct {
	clubGateway db.ClubGateway
	userGateway db.UserGateway
}

func NewClubUseCase(clubGateway db.ClubGateway, userGateway db.UserGateway) UseCase {
	return &clubUseCase{
		clubGateway: clubGateway,
		userGateway: userGateway,
	}
}

func (uc *clubUseCase) GetProfile(ctx context.Context, userID string) (*model.ProfileDTO, error) {
	user, err := uc.userGateway.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	clubs, err := uc.clubGateway.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.ProfileDTO{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Clubs:    clubs,
	}, nil
}

func (uc *clubUseCase) ListClubDistances(ctx context.Context, userID string) ([]distance.ClubDistance, error) {
	clubs, err := uc.clubGateway.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	distances := make([]distance.ClubDistance, len(clubs))
	for i, club := range clubs {
		distances[i] = distance.ClubDistance{
			Name:         string(club.ClubName),
			BaseDistance: float64(club.Distance),
		}
	}
	return distances, nil
}

func (uc *clubUseCase) AddClub(ctx context.Context, userID string, dto model.ClubRequestDTO) (*entity.Club, error) {
	club, err := validateClub(dto)
	if err != nil {
		return nil, err
	}
	club.UserID = userID

	created, err := uc.clubGateway.Create(ctx, club)
	if err != nil {
		return nil, err
	}

	log.Info(msg.GetMessage("club.added", created.ClubName, created.Distance), zap.String("user_id", userID))
	return created, nil
}

func (uc *clubUseCase) UpdateClub(ctx context.Context, userID string, clubID string, dto model.ClubRequestDTO) (*entity.Club, error) {
	club, err := validateClub(dto)
	if err != nil {
		return nil, err
	}
	club.ID = clubID
	club.UserID = userID

	updated, err := uc.clubGateway.Update(ctx, club)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (uc *clubUseCase) RemoveClub(ctx context.Context, userID string, clubID string) error {
	if err := uc.clubGateway.Delete(ctx, userID, clubID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrClubNotFound
		}
		return err
	}

	log.Info(msg.GetMessage("club.removed", clubID), zap.String("user_id", userID))
	return nil
}

func validateClub(dto model.ClubRequestDTO) (entity.Club, error) {
	name, err := entity.ParseClubName(dto.ClubName)
	if err != nil {
		return entity.Club{}, err
	}
	if !numberutils.IsIntPositive(dto.Distance) {
		return entity.Club{}, &distance.ValidationError{
			Field: "distance",
			Value: strconv.Itoa(dto.Distance),
			Err:   errNonPositiveDistance,
		}
	}
	return entity.Club{ClubName: name, Distance: dto.Distance}, nil
}
