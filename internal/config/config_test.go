package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("CIRCUITSPACE_LOG_MODE", "")
	os.Unsetenv("CIRCUITSPACE_LOG_MODE")

	var cfg Config
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, 5, cfg.QuizSize)
	assert.Equal(t, 5, cfg.DailyQuizLimit)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CIRCUITSPACE_DB", "/tmp/cs.db")
	t.Setenv("CIRCUITSPACE_QUIZ_SIZE", "3")

	var cfg Config
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "/tmp/cs.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.QuizSize)
}

func TestParseEnvInvalidInt(t *testing.T) {
	t.Setenv("CIRCUITSPACE_QUIZ_SIZE", "many")

	var cfg Config
	assert.Error(t, ParseEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CIRCUITSPACE_LOG_FILE=/tmp/from-dotenv.log\n"), 0o644))
	t.Setenv("CIRCUITSPACE_LOG_FILE", "")
	os.Unsetenv("CIRCUITSPACE_LOG_FILE")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	t.Cleanup(func() { os.Unsetenv("CIRCUITSPACE_LOG_FILE") })
	assert.Equal(t, "/tmp/from-dotenv.log", os.Getenv("CIRCUITSPACE_LOG_FILE"))
}

func TestLoadClampsQuizSize(t *testing.T) {
	t.Setenv("CIRCUITSPACE_QUIZ_SIZE", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.QuizSize)
}
