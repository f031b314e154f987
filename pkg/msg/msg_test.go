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

func TestGetMessage_EmbeddedCatalogue(t *testing.T) {
	assert.Equal(t, "No measurements available", GetMessage("climate.error.empty-dataset"))
}

func TestGetMessage_Placeholders(t *testing.T) {
	got := GetMessage("app.req-end", "GET", "/api/v1.0/tobs", 200, 1500*time.Millisecond, "abc")
	assert.Equal(t, "GET /api/v1.0/tobs -> 200 in 1.5s [abc]", got)
}

func TestGetMessage_ErrorArgument(t *testing.T) {
	got := GetMessage("db.probe-failed", errors.New("connection refused"))
	assert.Equal(t, "Store probe failed: connection refused", got)
}

func TestGetMessage_UnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nope", GetMessage("nope.nope"))
}

func TestInit_OverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("rate-limit:\n  exceeded: \"Slow down\"\n"), 0o600))

	require.NoError(t, Init(path))
	t.Cleanup(func() { require.NoError(t, load(defaultMessages)) })

	assert.Equal(t, "Slow down", GetMessage("rate-limit.exceeded"))
	assert.Equal(t, "No measurements available", GetMessage("climate.error.empty-dataset"))
}
