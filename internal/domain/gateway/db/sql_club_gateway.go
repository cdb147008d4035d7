package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"golf-api/internal/domain/entity"
)

const clubColumns = "id, club_name, distance, user_id, created_at, updated_at"

// SQLClubGateway is the database/sql implementation of ClubGateway, selected with app.db.client=sql
type SQLClubGateway struct {
	DB  *sql.DB
	now func() time.Time
}

var _ ClubGateway = (*SQLClubGateway)(nil)

func NewSQLClubGateway(db *sql.DB) *SQLClubGateway {
	return &SQLClubGateway{DB: db, now: time.Now}
}

func (gateway *SQLClubGateway) FindByUserID(ctx context.Context, userID string) ([]entity.Club, error) {
	rows, err := gateway.DB.QueryContext(ctx,
		"SELECT "+clubColumns+" FROM golf_clubs WHERE user_id = $1 ORDER BY created_at ASC, id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	defer rows.Close()

	clubs := make([]entity.Club, 0)
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

func (gateway *SQLClubGateway) FindByID(ctx context.Context, userID string, id string) (*entity.Club, error) {
	row := gateway.DB.QueryRowContext(ctx,
		"SELECT "+clubColumns+" FROM golf_clubs WHERE id = $1 AND user_id = $2", id, userID)

	club, err := scanClub(row)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (gateway *SQLClubGateway) Create(ctx context.Context, club entity.Club) (*entity.Club, error) {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	now := gateway.now().UTC()
	club.CreatedAt = now
	club.UpdatedAt = now

	_, err := gateway.DB.ExecContext(ctx,
		"INSERT INTO golf_clubs ("+clubColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		club.ID, string(club.ClubName), club.Distance, club.UserID, club.CreatedAt, club.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}
	return &club, nil
}

func (gateway *SQLClubGateway) Update(ctx context.Context, club entity.Club) (*entity.Club, error) {
	result, err := gateway.DB.ExecContext(ctx,
		"UPDATE golf_clubs SET club_name = $1, distance = $2, updated_at = $3 WHERE id = $4 AND user_id = $5",
		string(club.ClubName), club.Distance, gateway.now().UTC(), club.ID, club.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to update club: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}
	return gateway.FindByID(ctx, club.UserID, club.ID)
}

func (gateway *SQLClubGateway) Delete(ctx context.Context, userID string, id string) error {
	result, err := gateway.DB.ExecContext(ctx,
		"DELETE FROM golf_clubs WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	return requireAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClub(row rowScanner) (entity.Club, error) {
	var club entity.Club
	var name string
	err := row.Scan(&club.ID, &name, &club.Distance, &club.UserID, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return entity.Club{}, ErrNotFound
		}
		return entity.Club{}, fmt.Errorf("failed to scan club: %w", err)
	}
	club.ClubName = entity.ClubName(name)
	return club, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
