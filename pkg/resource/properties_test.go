package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit_ResolvesPlaceholders(t *testing.T) {
	t.Setenv("GOLF_DB_HOST", "db.internal")

	Init(writeProperties(t, `
app:
  db:
    host: ${GOLF_DB_HOST:localhost}
    port: ${GOLF_DB_PORT:5432}
    url: postgres://${GOLF_DB_HOST:localhost}:${GOLF_DB_PORT:5432}/golf
  cache:
    ttl: 15m
  weather:
    points:
      - "40.7128,-74.0060"
      - "34.0522,-118.2437"
  enabled: true
`))

	assert.Equal(t, "db.internal", GetString("app.db.host"))
	assert.Equal(t, 5432, GetInt("app.db.port"))
	assert.Equal(t, "postgres://db.internal:5432/golf", GetString("app.db.url"))
	assert.Equal(t, 15*time.Minute, GetDuration("app.cache.ttl"))
	assert.Equal(t, []string{"40.7128,-74.0060", "34.0522,-118.2437"}, GetStringSlice("app.weather.points"))
	assert.True(t, GetBool("app.enabled"))
}

func TestInit_EmptyDefault(t *testing.T) {
	Init(writeProperties(t, `
app:
  queue: ${GOLF_UNSET_QUEUE:}
`))

	assert.Empty(t, GetString("app.queue"))
}

func TestSet(t *testing.T) {
	Init(writeProperties(t, "app:\n  name: golf\n"))
	Set("app.name", "override")

	assert.Equal(t, "override", GetString("app.name"))
}
