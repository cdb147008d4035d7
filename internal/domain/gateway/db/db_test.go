package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
)

func newGormDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.AutoMigrate(Records()...))
	return gormDB
}

func newSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = sqlDB.Exec(`CREATE TABLE golf_clubs (
		id VARCHAR(36) PRIMARY KEY,
		club_name VARCHAR(20) NOT NULL,
		distance INTEGER NOT NULL,
		user_id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)
	return sqlDB
}

func TestClubGateways(t *testing.T) {
	implementations := map[string]func(t *testing.T) ClubGateway{
		"gorm": func(t *testing.T) ClubGateway { return NewGormClubGateway(newGormDB(t)) },
		"sql": func(t *testing.T) ClubGateway {
			gateway := NewSQLClubGateway(newSQLDB(t))
			tick := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			gateway.now = func() time.Time {
				tick = tick.Add(time.Second)
				return tick
			}
			return gateway
		},
	}

	for name, newGateway := range implementations {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			gateway := newGateway(t)

			driver, err := gateway.Create(ctx, entity.Club{ClubName: entity.Driver, Distance: 250, UserID: "u1"})
			require.NoError(t, err)
			assert.NotEmpty(t, driver.ID)

			iron, err := gateway.Create(ctx, entity.Club{ClubName: entity.Iron7, Distance: 150, UserID: "u1"})
			require.NoError(t, err)

			_, err = gateway.Create(ctx, entity.Club{ClubName: entity.Pitching, Distance: 110, UserID: "u2"})
			require.NoError(t, err)

			clubs, err := gateway.FindByUserID(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, clubs, 2)
			assert.Equal(t, entity.Driver, clubs[0].ClubName)
			assert.Equal(t, entity.Iron7, clubs[1].ClubName)

			found, err := gateway.FindByID(ctx, "u1", iron.ID)
			require.NoError(t, err)
			assert.Equal(t, 150, found.Distance)

			_, err = gateway.FindByID(ctx, "u2", iron.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			updated, err := gateway.Update(ctx, entity.Club{ID: iron.ID, UserID: "u1", ClubName: entity.Iron6, Distance: 160})
			require.NoError(t, err)
			assert.Equal(t, entity.Iron6, updated.ClubName)
			assert.Equal(t, 160, updated.Distance)

			_, err = gateway.Update(ctx, entity.Club{ID: iron.ID, UserID: "u2", ClubName: entity.Iron5, Distance: 1})
			assert.ErrorIs(t, err, ErrNotFound)

			assert.ErrorIs(t, gateway.Delete(ctx, "u2", driver.ID), ErrNotFound)
			require.NoError(t, gateway.Delete(ctx, "u1", driver.ID))

			clubs, err = gateway.FindByUserID(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, clubs, 1)
			assert.Equal(t, iron.ID, clubs[0].ID)
		})
	}
}

func TestGormUserGateway(t *testing.T) {
	ctx := context.Background()
	gateway := NewGormUserGateway(newGormDB(t))

	alice, err := gateway.Create(ctx, entity.User{Username: "alice", Email: "a@example.com", PasswordHash: "h1"})
	require.NoError(t, err)
	_, err = gateway.Create(ctx, entity.User{Username: "bob", PasswordHash: "h2", IsAdmin: true})
	require.NoError(t, err)

	_, err = gateway.Create(ctx, entity.User{Username: "alice", PasswordHash: "h3"})
	assert.ErrorIs(t, err, ErrDuplicate)

	byName, err := gateway.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)
	assert.Equal(t, "h1", byName.PasswordHash)

	_, err = gateway.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := gateway.FindAll(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "bob", page[0].Username)
	assert.True(t, page[0].IsAdmin)

	count, err := gateway.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestHealthGateways(t *testing.T) {
	ctx := context.Background()

	gormHealth := NewGormHealthDBGateway(newGormDB(t)).Health(ctx)
	assert.Equal(t, model.StatusUp, gormHealth.Status)
	assert.Equal(t, "sqlite", gormHealth.Details["driver"])

	closed := newSQLDB(t)
	require.NoError(t, closed.Close())
	sqlHealth := NewSQLHealthDBGateway(closed).Health(ctx)
	assert.Equal(t, model.StatusDown, sqlHealth.Status)
	assert.NotEmpty(t, sqlHealth.Details["message"])
}
