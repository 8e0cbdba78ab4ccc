package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/domain"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"CONFIG_FILE", "DATABASE_URL", "AI_PROVIDER", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"AI_MODEL", "CONTRAST_THRESHOLD", "THEME", "LOG_LEVEL", "AUDIT_WORKERS", "BROWSER_CAPTURE"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heuristicheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.AuditWorkers)
	assert.Equal(t, "openai", cfg.Advisor.Provider)
	assert.Empty(t, cfg.Advisor.APIKey)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Zero(t, cfg.ContrastThreshold)
	assert.Empty(t, cfg.Rules)
}

func TestFileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, `
contrastThreshold: 4.5
theme: light
browserCapture: true
rules:
  2: false
  10: false
advisor:
  provider: gemini
  model: gemini-1.5-pro
  apiKey: from-file
  timeout: 20s
`))
	t.Setenv("DATABASE_URL", "postgres://localhost/heuristicheck")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("THEME", "dark")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.ContrastThreshold)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.BrowserCapture)
	assert.Equal(t, domain.Settings{domain.RuleRealWorld: false, domain.RuleHelp: false}, cfg.Rules)
	assert.Equal(t, "gemini", cfg.Advisor.Provider)
	assert.Equal(t, "from-env", cfg.Advisor.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Advisor.Model)
	assert.Equal(t, 20*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestUnknownRuleInFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, "rules:\n  11: true\n"))
	_, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoDatabase)
}

func TestMalformedEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUDIT_WORKERS", "many")
	t.Setenv("CONTRAST_THRESHOLD", "high")
	cfg, _ := Load()
	assert.Equal(t, 2, cfg.AuditWorkers)
	assert.Zero(t, cfg.ContrastThreshold)
}
