// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Server  ServerConfig
	Auth    AuthConfig
	Storage StorageConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 3000)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
	CORSOrigins  []string      // Allowed CORS origins (default: *)
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// AdminToken is the shared bearer secret for admin endpoints.
	// Empty rejects every admin request.
	AdminToken string
}

// StorageConfig holds the JSON document locations.
type StorageConfig struct {
	SubmissionsPath  string
	CatalogPath      string
	CatalogBaseDir   string // Base for per-request catalog paths (default: directory of SubmissionsPath)
	PluginConfigPath string
}

// LoadConfig loads configuration from the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(args []string) (*Config, error) {
	flagSet := pflag.NewFlagSet("submission-server", pflag.ContinueOnError)

	env := flagSet.String("env", "", "Environment (development, staging, production)")
	logLevel := flagSet.String("log-level", "", "Log level (debug, info, warn, error)")

	// Server flags
	serverPort := flagSet.String("port", "", "Server port (default: 3000)")
	readTimeout := flagSet.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flagSet.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flagSet.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	corsOrigins := flagSet.String("cors-origins", "", "Comma separated allowed CORS origins (default: *)")

	adminToken := flagSet.String("admin-token", "", "Shared bearer token for admin endpoints")

	// Storage flags
	submissionsPath := flagSet.String("submissions-path", "", "Submissions file (default: ./submissions.json)")
	catalogPath := flagSet.String("catalog-path", "", "Catalog file (default: ./ai-bands.json)")
	catalogBaseDir := flagSet.String("catalog-base-dir", "", "Base directory for alternate catalog paths (default: submissions file directory)")
	pluginConfigPath := flagSet.String("plugin-config-path", "", "Plugin config document (default: ./YoutubeConfig.json)")

	envFile := flagSet.String("env-file", ".env", "Path to .env file")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:        getConfigValue(*serverPort, "PORT", "3000"),
			CORSOrigins: splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		Auth: AuthConfig{
			AdminToken: getConfigValue(*adminToken, "ADMIN_TOKEN", ""),
		},
		Storage: StorageConfig{
			SubmissionsPath:  getConfigValue(*submissionsPath, "SUBMISSIONS_PATH", "submissions.json"),
			CatalogPath:      getConfigValue(*catalogPath, "CATALOG_PATH", "ai-bands.json"),
			CatalogBaseDir:   getConfigValue(*catalogBaseDir, "CATALOG_BASE_DIR", ""),
			PluginConfigPath: getConfigValue(*pluginConfigPath, "PLUGIN_CONFIG_PATH", "YoutubeConfig.json"),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = getDurationConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = getDurationConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = getDurationConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.expandStoragePaths(); err != nil {
		return nil, fmt.Errorf("invalid storage path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Server.Port == "" {
		return errors.New("PORT cannot be empty")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	if c.Storage.SubmissionsPath == "" || c.Storage.CatalogPath == "" || c.Storage.PluginConfigPath == "" {
		return errors.New("storage paths cannot be empty")
	}

	if c.Storage.SubmissionsPath == c.Storage.CatalogPath {
		return errors.New("SUBMISSIONS_PATH and CATALOG_PATH must differ")
	}

	// AdminToken can be empty; admin endpoints then reject every request.

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandStoragePaths makes every storage path absolute and defaults the
// catalog base directory to the directory holding the submissions file.
func (c *Config) expandStoragePaths() error {
	var err error
	if c.Storage.SubmissionsPath, err = expandPath(c.Storage.SubmissionsPath, ""); err != nil {
		return err
	}
	if c.Storage.CatalogPath, err = expandPath(c.Storage.CatalogPath, ""); err != nil {
		return err
	}
	if c.Storage.PluginConfigPath, err = expandPath(c.Storage.PluginConfigPath, ""); err != nil {
		return err
	}
	if c.Storage.CatalogBaseDir, err = expandPath(c.Storage.CatalogBaseDir, filepath.Dir(c.Storage.SubmissionsPath)); err != nil {
		return err
	}
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getDurationConfigValue parses a duration from flag, env var, or default.
func getDurationConfigValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", envKey, raw, err)
	}
	return d, nil
}

// splitList splits a comma separated value, dropping blank items.
func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
