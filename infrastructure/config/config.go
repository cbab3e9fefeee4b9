package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Content assembly
	GroupsPerResponse int

	// Orchestrator configuration. An empty API key runs the service in
	// mock mode.
	OpenAIAPIKey string
	OpenAIModel  string

	// Media provider credentials. Each empty credential disables its
	// provider; the assembler substitutes mock media for disabled kinds.
	UnsplashAccessKey  string
	RedditUserAgent    string
	ImgflipUsername    string
	ImgflipPassword    string
	TwitterBearerToken string

	// Logging
	LogLevel string

	// CORS
	EnableCORS     bool
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8000"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		GroupsPerResponse: getEnvInt("GROUPS_PER_RESPONSE", 4),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", ""),

		UnsplashAccessKey:  getEnv("UNSPLASH_ACCESS_KEY", ""),
		RedditUserAgent:    getEnv("REDDIT_USER_AGENT", ""),
		ImgflipUsername:    getEnv("IMGFLIP_USERNAME", ""),
		ImgflipPassword:    getEnv("IMGFLIP_PASSWORD", ""),
		TwitterBearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		EnableCORS:     getEnvBool("ENABLE_CORS", true),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.GroupsPerResponse < 1 || c.GroupsPerResponse > 10 {
		return fmt.Errorf("GROUPS_PER_RESPONSE must be between 1 and 10, got %d", c.GroupsPerResponse)
	}
	if (c.ImgflipUsername == "") != (c.ImgflipPassword == "") {
		return fmt.Errorf("IMGFLIP_USERNAME and IMGFLIP_PASSWORD must be set together")
	}
	return nil
}

// MockMode reports whether the service runs without an orchestrator.
func (c *Config) MockMode() bool {
	return c.OpenAIAPIKey == ""
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
