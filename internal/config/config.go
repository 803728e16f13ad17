// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Assets   AssetsConfig
	Render   RenderConfig
	Hiscores HiscoresConfig
	Server   ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string // Optional: json, pretty or text (default: derived from environment)
}

// AssetsConfig holds the location of fonts, templates and icon sprites.
type AssetsConfig struct {
	// Path is the asset root. Empty means built-in fonts only and no icons.
	Path string
	// Font is the registry name used for card text (default: the built-in regular face)
	Font string
}

// RenderConfig holds compositor defaults.
type RenderConfig struct {
	Parallel bool   // Render sections concurrently (default: true)
	Edition  string // Edition used when a request does not name one (default: oldschool)
}

// HiscoresConfig holds configuration for the upstream stats service.
type HiscoresConfig struct {
	BaseURL           string
	Timeout           time.Duration // default: 10s
	RequestsPerMinute int           // default: 60
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 30s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)

	AllowedOrigins []string // CORS origins (default: any)
	RateLimit      int      // card renders per minute per client IP, 0 disables (default: 60)
	RateBurst      int      // (default: 10)
}

// Editions accepted by RENDER_EDITION.
var validEditions = map[string]bool{
	"oldschool": true,
	"runescape": true,
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("statcard", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (json, pretty, text)")
	assetsPath := fs.String("assets-path", "", "Directory holding fonts, templates and icons")
	assetsFont := fs.String("font", "", "Font name used for card text")
	parallel := fs.String("parallel", "", "Render card sections concurrently (default: true)")
	edition := fs.String("edition", "", "Default game edition (oldschool, runescape)")
	hiscoresURL := fs.String("hiscores-url", "", "Base URL of the hiscores service")
	hiscoresTimeout := fs.String("hiscores-timeout", "", "Hiscores request timeout (default: 10s)")
	hiscoresRate := fs.String("hiscores-rpm", "", "Hiscores requests per minute (default: 60)")
	serverPort := fs.String("port", "", "Server port (default: 8080)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 30s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	origins := fs.String("allowed-origins", "", "Comma separated CORS origins (default: any)")
	rateLimit := fs.String("rate-limit", "", "Card renders per minute per client, 0 disables (default: 60)")
	rateBurst := fs.String("rate-burst", "", "Rate limit burst (default: 10)")
	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// godotenv.Load never overrides variables that are already set; a missing file is fine.
	_ = godotenv.Load(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(*logLevel, "LOG_LEVEL", "info"),
			Format: getConfigValue(*logFormat, "LOG_FORMAT", ""),
		},
		Assets: AssetsConfig{
			Path: getConfigValue(*assetsPath, "ASSETS_PATH", ""),
			Font: getConfigValue(*assetsFont, "ASSETS_FONT", ""),
		},
		Render: RenderConfig{
			Parallel: getBoolConfigValue(*parallel, "RENDER_PARALLEL", true),
			Edition:  strings.ToLower(getConfigValue(*edition, "RENDER_EDITION", "oldschool")),
		},
		Hiscores: HiscoresConfig{
			BaseURL:           strings.TrimRight(getConfigValue(*hiscoresURL, "HISCORES_BASE_URL", ""), "/"),
			RequestsPerMinute: getIntConfigValue(*hiscoresRate, "HISCORES_REQUESTS_PER_MINUTE", 60),
		},
		Server: ServerConfig{
			Port:           getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			AllowedOrigins: splitList(getConfigValue(*origins, "SERVER_ALLOWED_ORIGINS", "")),
			RateLimit:      getIntConfigValue(*rateLimit, "SERVER_RATE_LIMIT", 60),
			RateBurst:      getIntConfigValue(*rateBurst, "SERVER_RATE_BURST", 10),
		},
	}

	durations := []struct {
		flagValue string
		envKey    string
		def       string
		dst       *time.Duration
	}{
		{*hiscoresTimeout, "HISCORES_TIMEOUT", "10s", &cfg.Hiscores.Timeout},
		{*readTimeout, "SERVER_READ_TIMEOUT", "15s", &cfg.Server.ReadTimeout},
		{*writeTimeout, "SERVER_WRITE_TIMEOUT", "30s", &cfg.Server.WriteTimeout},
		{*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s", &cfg.Server.IdleTimeout},
	}
	for _, d := range durations {
		raw := getConfigValue(d.flagValue, d.envKey, d.def)
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.envKey, raw, err)
		}
		*d.dst = parsed
	}

	if err := cfg.expandAssetsPath(); err != nil {
		return nil, fmt.Errorf("invalid assets path: %w", err)
	}

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

	switch c.Logger.Format {
	case "", "json", "pretty", "text":
	default:
		return fmt.Errorf("invalid log format: %s (must be json, pretty, or text)", c.Logger.Format)
	}

	if !validEditions[c.Render.Edition] {
		return fmt.Errorf("invalid edition: %s (must be oldschool or runescape)", c.Render.Edition)
	}

	if c.Hiscores.RequestsPerMinute <= 0 {
		return fmt.Errorf("hiscores requests per minute must be positive, got %d", c.Hiscores.RequestsPerMinute)
	}
	if c.Hiscores.Timeout <= 0 {
		return errors.New("hiscores timeout must be positive")
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server rate limit must not be negative, got %d", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("server rate burst must be positive, got %d", c.Server.RateBurst)
	}

	// Hiscores base URL may be empty: the service then only renders posted snapshots.

	return nil
}

// expandAssetsPath expands ~ and makes the assets path absolute.
func (c *Config) expandAssetsPath() error {
	if c.Assets.Path == "" {
		return nil
	}

	path := c.Assets.Path
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	c.Assets.Path = filepath.Clean(path)
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
