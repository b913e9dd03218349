// Package config provides application configuration management with
// support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Data         DataConfig
	Session      SessionConfig
	Integrations IntegrationsConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds local storage configuration.
type DataConfig struct {
	// Path is the directory holding the partition database and marker key.
	Path string
}

// SessionConfig holds session and login configuration.
type SessionConfig struct {
	// MarkerTTL is the lifetime of the secondary session marker.
	MarkerTTL time.Duration
	// AdminEmail/AdminSecret are the administrative credential pair.
	AdminEmail  string
	AdminSecret string
	// LoginRPS/LoginBurst throttle login attempts per email.
	LoginRPS   float64
	LoginBurst int
}

// IntegrationsConfig holds integration catalog configuration.
type IntegrationsConfig struct {
	// FilePath is the externally-managed integrations JSON file.
	// Empty disables the file watcher.
	FilePath string
}

// Flags carries the command-line overrides. Parsed by the caller so
// tests and tooling can load config without touching the global flag set.
type Flags struct {
	Environment string
	LogLevel    string
	DataPath    string
	EnvFile     string
}

// Load builds the configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Environment, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Path: getConfigValue(flags.DataPath, "DATA_PATH", defaultDataPath()),
		},
		Session: SessionConfig{
			AdminEmail:  getConfigValue("", "ADMIN_EMAIL", "admin@musclemap.app"),
			AdminSecret: getConfigValue("", "ADMIN_SECRET", "anatomy-admin"),
			LoginRPS:    getFloatConfigValue("", "LOGIN_RPS", 0.5),
			LoginBurst:  getIntConfigValue("", "LOGIN_BURST", 5),
		},
		Integrations: IntegrationsConfig{
			FilePath: getConfigValue("", "INTEGRATIONS_FILE", ""),
		},
	}

	markerTTLStr := getConfigValue("", "MARKER_TTL", "720h")
	markerTTL, err := time.ParseDuration(markerTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid marker TTL %q: %w", markerTTLStr, err)
	}
	cfg.Session.MarkerTTL = markerTTL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("invalid environment %q", c.App.Environment)
	}
	if c.Data.Path == "" {
		return fmt.Errorf("data path cannot be empty")
	}
	if c.Session.MarkerTTL <= 0 {
		return fmt.Errorf("marker TTL must be positive")
	}
	if c.Session.LoginBurst < 1 {
		return fmt.Errorf("login burst must be at least 1")
	}
	return nil
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".musclemap"
	}
	return home + "/.musclemap"
}

// getConfigValue returns the first non-empty of flag value, environment
// variable, and default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	raw := getConfigValue(flagValue, envKey, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

// loadEnvFile reads KEY=VALUE pairs into the process environment.
// Existing environment variables are not overridden.
func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}
