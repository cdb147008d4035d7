package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	config := Config{Host: "localhost", Port: "5432", Username: "golf", Password: "secret", Database: "golf"}
	assert.Equal(t, "host=localhost port=5432 user=golf password=secret dbname=golf sslmode=disable", config.DSN())

	config.Schema = "golf_api"
	config.SSLMode = "require"
	assert.Equal(t, "host=localhost port=5432 user=golf password=secret dbname=golf sslmode=require search_path=golf_api", config.DSN())
}

type recordingPool struct {
	open, idle int
	lifetime   time.Duration
}

func (p *recordingPool) SetMaxOpenConns(n int)              { p.open = n }
func (p *recordingPool) SetMaxIdleConns(n int)              { p.idle = n }
func (p *recordingPool) SetConnMaxLifetime(d time.Duration) { p.lifetime = d }

func TestConfig_ApplyPool(t *testing.T) {
	pool := &recordingPool{open: -1, idle: -1}
	Config{MaxOpenConns: 20, ConnMaxLifetime: time.Hour}.ApplyPool(pool)

	assert.Equal(t, 20, pool.open)
	assert.Equal(t, -1, pool.idle, "zero keeps the driver default")
	assert.Equal(t, time.Hour, pool.lifetime)
}
