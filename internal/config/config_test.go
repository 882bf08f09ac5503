package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://api.studyplatform.app/progress/graphql", cfg.ProgressURL())
	assert.Equal(t, "https://api.studyplatform.app/course-outline/graphql", cfg.OutlineURL())
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTOWATCH_ORIGIN", "http://127.0.0.1:8080/")
	t.Setenv("AUTOWATCH_TIMEOUT", "5s")
	t.Setenv("AUTOWATCH_ENV", "production")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "http://127.0.0.1:8080/progress/graphql", cfg.ProgressURL())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := "origin: https://edu.test\noutline_path: /outline\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "autowatch.yaml"), []byte(body), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://edu.test/outline", cfg.OutlineURL())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/progress/graphql", cfg.ProgressPath)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "autowatch.yaml"), []byte("log_level: debug\n"), 0o600))
	t.Setenv("AUTOWATCH_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("AUTOWATCH_TIMEOUT", "0s")

	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_RejectsBadOrigin(t *testing.T) {
	for _, origin := range []string{"", "ftp://x", "not a url", "https://"} {
		cfg := Default()
		cfg.Origin = origin
		assert.ErrorIsf(t, cfg.Validate(), ErrInvalidConfig, "origin %q", origin)
	}
}

func TestValidate_RejectsRelativePath(t *testing.T) {
	cfg := Default()
	cfg.ProgressPath = "graphql"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
