package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AI modes reported by /health
const (
	AIModeCloud = "cloud"
	AIModeLocal = "local"
)

type Config struct {
	Port        string
	Environment string
	// DatabaseURL selects the store: postgres:// URLs use pgx, anything else is a SQLite path
	DatabaseURL string
	TablePrefix string
	CORSOrigins string
	// LLM Configuration
	AnthropicAPIKey string
	DefaultModel    string
	MaxTokens       int64
	SystemPrompt    string
	// Logging
	LogDir      string
	LogMaxFiles int
	// Streaming
	SSEKeepAliveInterval time.Duration
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          env,
		DatabaseURL:          getEnv("DATABASE_URL", "webcraft.db"),
		TablePrefix:          getTablePrefix(env),
		CORSOrigins:          getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		AnthropicAPIKey:      strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		DefaultModel:         getEnv("DEFAULT_MODEL", "claude-haiku-4-5-20251001"),
		MaxTokens:            int64(getEnvInt("MAX_TOKENS", 4096)),
		SystemPrompt:         getEnv("SYSTEM_PROMPT", ""),
		LogDir:               getEnv("LOG_DIR", ""),
		LogMaxFiles:          getEnvInt("LOG_MAX_FILES", 10),
		SSEKeepAliveInterval: getEnvDuration("SSE_KEEPALIVE_INTERVAL", 10*time.Second),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// AIMode reports "cloud" when an Anthropic key is configured, "local" otherwise
func (c *Config) AIMode() string {
	if c.AnthropicAPIKey != "" {
		return AIModeCloud
	}
	return AIModeLocal
}

// UsePostgres reports whether DatabaseURL points at PostgreSQL
func (c *Config) UsePostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// AllowedOrigins splits CORSOrigins on commas
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go durations ("15s") or plain seconds ("15")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaultValue
}
