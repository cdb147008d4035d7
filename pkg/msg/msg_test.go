package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
club:
  added: "Club {0} added with {1} yards"
  error:
    failed: "Failed: {0}"
req:
  end: "{0} took {1}"
`), 0o600))
	Init(path)

	assert.Equal(t, "Club 7i added with 150 yards", GetMessage("club.added", "7i", 150))
	assert.Equal(t, "Failed: boom", GetMessage("club.error.failed", errors.New("boom")))
	assert.Equal(t, "GET took 1.5s", GetMessage("req.end", "GET", 1500*time.Millisecond))
	assert.Equal(t, `Failed: {"a":1}`, GetMessage("club.error.failed", map[string]int{"a": 1}))
	assert.Equal(t, "Message not found: club.unknown", GetMessage("club.unknown"))
}
