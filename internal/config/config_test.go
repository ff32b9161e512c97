package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "session_key: test-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3003", cfg.Listen)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	assert.Equal(t, "0 3 * * *", cfg.SweepSchedule)
	assert.Equal(t, "./data/guestlist.db", cfg.Database.Path)
}

func TestLoad_MissingSessionKey(t *testing.T) {
	path := writeConfig(t, "listen: 127.0.0.1:8080\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "session key")
}

func TestLoad_InvalidSweepSchedule(t *testing.T) {
	path := writeConfig(t, "session_key: test-secret\nsweep_schedule: often\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "sweep schedule")
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
session_key: test-secret
session_max_age: 600
database:
  path: /tmp/test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, 600, cfg.SessionMaxAge)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
}
