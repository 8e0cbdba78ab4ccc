package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/domain"
)

// ErrNoDatabase is returned alongside a usable Config when DATABASE_URL is unset.
var ErrNoDatabase = errString("DATABASE_URL not set; audits are kept in memory")

type errString string

func (e errString) Error() string { return string(e) }

type Config struct {
	Env               string
	ListenAddr        string
	DatabaseURL       string
	AuditWorkers      int
	RedisURL          string
	AdviceCacheTTL    time.Duration
	ContrastThreshold float64
	Theme             string
	LogLevel          slog.Level
	BrowserCapture    bool
	Rules             domain.Settings
	Advisor           advisor.Config
}

// File is the optional YAML configuration named by CONFIG_FILE.
type File struct {
	ContrastThreshold float64         `yaml:"contrastThreshold"`
	Theme             string          `yaml:"theme"`
	BrowserCapture    *bool           `yaml:"browserCapture"`
	Rules             map[int]bool    `yaml:"rules"`
	Advisor           AdvisorSettings `yaml:"advisor"`
}

type AdvisorSettings struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"apiKey"`
	BaseURL  string        `yaml:"baseURL"`
	Timeout  time.Duration `yaml:"timeout"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the optional config file and then the environment; environment values win.
func Load() (Config, error) {
	var file File
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		file = f
	}

	rules, err := file.settings()
	if err != nil {
		return Config{}, err
	}
	provider := strings.ToLower(getenv("AI_PROVIDER", firstNonEmpty(file.Advisor.Provider, "openai")))
	keyVar := "OPENAI_API_KEY"
	if provider == "gemini" {
		keyVar = "GEMINI_API_KEY"
	}
	browser := false
	if file.BrowserCapture != nil {
		browser = *file.BrowserCapture
	}

	cfg := Config{
		Env:               getenv("APP_ENV", "development"),
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AuditWorkers:      getenvInt("AUDIT_WORKERS", 2),
		RedisURL:          os.Getenv("REDIS_URL"),
		AdviceCacheTTL:    getenvDuration("ADVICE_CACHE_TTL", 24*time.Hour),
		ContrastThreshold: getenvFloat("CONTRAST_THRESHOLD", file.ContrastThreshold),
		Theme:             getenv("THEME", file.Theme),
		LogLevel:          parseLevel(getenv("LOG_LEVEL", "info")),
		BrowserCapture:    getenvBool("BROWSER_CAPTURE", browser),
		Rules:             rules,
		Advisor: advisor.Config{
			Provider: provider,
			APIKey:   getenv(keyVar, file.Advisor.APIKey),
			Model:    getenv("AI_MODEL", file.Advisor.Model),
			BaseURL:  getenv("AI_BASE_URL", file.Advisor.BaseURL),
			Timeout:  getenvDuration("AI_TIMEOUT", file.Advisor.Timeout),
		},
	}
	if cfg.DatabaseURL == "" {
		// Not fatal; callers fall back to the in-memory store.
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}

func LoadFile(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

func (f File) settings() (domain.Settings, error) {
	out := domain.Settings{}
	for id, enabled := range f.Rules {
		rid := domain.RuleID(id)
		if !rid.IsValid() {
			return nil, fmt.Errorf("config: unknown rule id %d", id)
		}
		out[rid] = enabled
	}
	return out, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
