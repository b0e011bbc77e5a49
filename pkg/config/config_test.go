package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavshah/rotation-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"SHIFT_CONFIG", "PORT", "DATABASE_URL", "DATA_PATH", "LOG_LEVEL", "ROSTER"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DefaultDataPath, cfg.DataPath)

	roster, err := cfg.Roster()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAgents(), roster.Agents())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "shifts.yaml")
	content := "port: \"9000\"\nlog_level: debug\nroster:\n  - Ana\n  - Ben\n  - Cal\n  - Dee\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SHIFT_CONFIG", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Ana", "Ben", "Cal", "Dee"}, cfg.Agents)
}

func TestLoad_RosterEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROSTER", "W, X ,Y,Z")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"W", "X", "Y", "Z"}, cfg.Agents)
}

func TestLoad_InvalidRoster(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROSTER", "A,B,C")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHIFT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roster: [unterminated"), 0o644))
	t.Setenv("SHIFT_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
