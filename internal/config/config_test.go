package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 9872, c.Server.Port)
	assert.Equal(t, ":9872", c.Addr())
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "gemini-3-flash-preview", c.Gemini.Model)
	assert.Equal(t, "eodly.db", c.Storage.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 1234
storage:
  path: /tmp/journal.db
log:
  level: warn
`), 0o644))

	t.Setenv("PORT", "4321")
	t.Setenv("GEMINI_API_KEY", "test-key")

	c := Load(path)
	assert.Equal(t, 4321, c.Server.Port, "env wins over file")
	assert.Equal(t, "/tmp/journal.db", c.Storage.Path)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "test-key", c.Gemini.APIKey)
}
