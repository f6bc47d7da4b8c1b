package config

import (
	"os"
	"strconv"
)

// PlaceholderAPIKey is the value shipped in .env.example; it is treated the
// same as an unset key.
const PlaceholderAPIKey = "your_api_key_here"

// Config aggregates application-wide configuration values.
type Config struct {
	Port             string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
	MaxTokens        int
	Env              string
	CORSOrigin       string
	APIBaseURL       string
	StrictActivities bool
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	port := getEnv("PORT", "3001")

	cfg := &Config{
		Port:             port,
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1/messages"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		MaxTokens:        parsePositiveInt(getEnv("ANTHROPIC_MAX_TOKENS", "4096"), 4096),
		Env:              getEnv("APP_ENV", "production"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:"+port),
		StrictActivities: parseBool(getEnv("STRICT_ACTIVITIES", "false")),
	}

	return cfg, nil
}

// Development reports whether the app runs in a development-like mode, which
// enables verbose error details in responses.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// APIKeyConfigured reports whether a usable Anthropic credential is present.
func (c *Config) APIKeyConfigured() bool {
	return c.AnthropicAPIKey != "" && c.AnthropicAPIKey != PlaceholderAPIKey
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parsePositiveInt(input string, fallback int) int {
	n, err := strconv.Atoi(input)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseBool(input string) bool {
	b, err := strconv.ParseBool(input)
	if err != nil {
		return false
	}
	return b
}
