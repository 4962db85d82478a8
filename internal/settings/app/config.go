package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const minJWTSecretLength = 32

var (
	ErrMissingSecret = errors.New("config: SETTINGS_JWT_SECRET is required")
	ErrShortSecret   = fmt.Errorf("config: SETTINGS_JWT_SECRET must be at least %d bytes", minJWTSecretLength)
)

type Config struct {
	Issuer              string        `yaml:"issuer"`                // Issuer claim expected on access tokens (default: partsdash)
	JWTSecret           string        `yaml:"jwt_secret"`            // Required: HS256 secret shared with the token issuer
	DatabaseFile        string        `yaml:"database_file"`         // Path to SQLite database file (default: ./settings.db)
	Env                 string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                int           `yaml:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
}

func defaultConfig() Config {
	return Config{
		Issuer:              "partsdash",
		DatabaseFile:        "settings.db",
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig builds the configuration in layers: defaults, then the YAML
// file named by SETTINGS_CONFIG_FILE, then the environment. A .env file in
// the working directory is loaded into the environment first but never
// overrides variables that are already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("SETTINGS_CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Issuer = getEnvOrDefault("SETTINGS_ISSUER", cfg.Issuer)
	cfg.JWTSecret = getEnvOrDefault("SETTINGS_JWT_SECRET", cfg.JWTSecret)
	cfg.DatabaseFile = getEnvOrDefault("SETTINGS_DATABASE_FILE", cfg.DatabaseFile)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return ErrMissingSecret
	case len(c.JWTSecret) < minJWTSecretLength:
		return ErrShortSecret
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	return nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
