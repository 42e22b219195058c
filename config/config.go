package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string
	EnableDocs  bool

	// Database
	Database DatabaseConfig

	// External medical reference lookup
	Lookup LookupConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type LookupConfig struct {
	Enabled   bool
	Timeout   time.Duration
	UserAgent string
}

type SecurityConfig struct {
	RateLimitPerSec float64
	RateLimitBurst  int64
	AllowedOrigins  []string
	TrustedProxies  []string
}

// MaxRequestCost is the most rate-limit tokens a single request can take, so
// RATE_LIMIT_BURST may not be smaller.
const MaxRequestCost = 5

var (
	cfg *Config

	validEnvironments = []string{"development", "staging", "production", "test"}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
)

// Load initializes the configuration
func Load() error {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	loaded, err := FromEnv()
	if err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// FromEnv builds and validates a Config from the current environment
// without touching the package-level configuration.
func FromEnv() (*Config, error) {
	c := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", "development")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		EnableDocs:  getEnvAsBool("ENABLE_DOCS", true),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "pharmacy"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Lookup: LookupConfig{
			Enabled:   getEnvAsBool("LOOKUP_ENABLED", true),
			Timeout:   getEnvAsDuration("LOOKUP_TIMEOUT", "10s"),
			UserAgent: getEnv("LOOKUP_USER_AGENT", "Mozilla/5.0 (compatible; PharmacyAssistant/1.0)"),
		},

		Security: SecurityConfig{
			RateLimitPerSec: getEnvAsFloat("RATE_LIMIT_PER_SEC", 5),
			RateLimitBurst:  int64(getEnvAsInt("RATE_LIMIT_BURST", 30)),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			TrustedProxies:  getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return c, nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal().Msg("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validate(c *Config) error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}
	if port < 1024 || port > 65535 {
		return fmt.Errorf("PORT must be between 1024 and 65535, got %d", port)
	}

	if !contains(validEnvironments, c.Environment) {
		return fmt.Errorf("ENVIRONMENT must be one of %v, got %q", validEnvironments, c.Environment)
	}

	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of %v, got %q", validLogLevels, c.LogLevel)
	}

	if c.Database.URI == "" && (c.Database.Host == "" || c.Database.Port == "") {
		return fmt.Errorf("database URI or host/port must be provided")
	}

	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("LOOKUP_TIMEOUT must be positive, got %s", c.Lookup.Timeout)
	}

	if c.Security.RateLimitPerSec <= 0 || c.Security.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit rate and burst must be positive")
	}
	if c.Security.RateLimitBurst < MaxRequestCost {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least %d, got %d", MaxRequestCost, c.Security.RateLimitBurst)
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
