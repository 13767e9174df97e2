// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Data   DataConfig
	Server ServerConfig
	Auth   AuthConfig
	SMTP   SMTPConfig
	CDN    CDNConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds storage configuration. BasePath hosts the document
// database, the search index and the auth key.
type DataConfig struct {
	BasePath string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
	CORSOrigins  []string      // Allowed origins for the admin frontend
}

// AdminAccount is one configured admin login. Accounts come from
// configuration, not from a registration flow; the site has no public
// users.
type AdminAccount struct {
	Email    string
	Name     string
	Password string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// PASETO v4 symmetric key for access tokens (32 bytes).
	// Set by auth.LoadOrGenerateKey in main.
	AccessTokenKey []byte
	// AccessTokenDuration, e.g. 12h.
	AccessTokenDuration time.Duration
	// Admins parsed from ADMIN_ACCOUNTS.
	Admins []AdminAccount
}

// SMTPConfig holds contact form mail delivery settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// CDNConfig holds image CDN settings.
type CDNConfig struct {
	BaseURL string
	APIKey  string
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Base path for data storage")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins")

	accessTokenDuration := flag.String("access-token-duration", "", "Access token lifetime (e.g., 12h)")
	adminAccounts := flag.String("admin-accounts", "", "Admin accounts as email:name:password, comma-separated")

	smtpHost := flag.String("smtp-host", "", "SMTP relay host")
	smtpPort := flag.String("smtp-port", "", "SMTP relay port (default: 587)")
	smtpUser := flag.String("smtp-user", "", "SMTP username")
	smtpPassword := flag.String("smtp-password", "", "SMTP password")
	smtpFrom := flag.String("smtp-from", "", "Envelope sender for outgoing mail")
	smtpTo := flag.String("smtp-to", "", "Inbox for contact form submissions")

	cdnBaseURL := flag.String("cdn-base-url", "", "Image CDN API base URL")
	cdnAPIKey := flag.String("cdn-api-key", "", "Image CDN API key")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Server: ServerConfig{
			Port:        getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			CORSOrigins: splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		SMTP: SMTPConfig{
			Host:     getConfigValue(*smtpHost, "SMTP_HOST", ""),
			Port:     getIntConfigValue(*smtpPort, "SMTP_PORT", 587),
			Username: getConfigValue(*smtpUser, "SMTP_USER", ""),
			Password: getConfigValue(*smtpPassword, "SMTP_PASSWORD", ""),
			From:     getConfigValue(*smtpFrom, "SMTP_FROM", ""),
			To:       getConfigValue(*smtpTo, "SMTP_TO", ""),
		},
		CDN: CDNConfig{
			BaseURL: getConfigValue(*cdnBaseURL, "CDN_BASE_URL", ""),
			APIKey:  getConfigValue(*cdnAPIKey, "CDN_API_KEY", ""),
		},
	}

	accessDurationStr := getConfigValue(*accessTokenDuration, "ACCESS_TOKEN_DURATION", "12h")
	accessDuration, err := time.ParseDuration(accessDurationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid access token duration %q: %w", accessDurationStr, err)
	}
	cfg.Auth.AccessTokenDuration = accessDuration

	admins, err := ParseAdminAccounts(getConfigValue(*adminAccounts, "ADMIN_ACCOUNTS", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_ACCOUNTS: %w", err)
	}
	cfg.Auth.Admins = admins

	readTimeoutStr := getConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	cfg.Server.ReadTimeout, err = time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}

	writeTimeoutStr := getConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	cfg.Server.WriteTimeout, err = time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}

	idleTimeoutStr := getConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	cfg.Server.IdleTimeout, err = time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ParseAdminAccounts parses the ADMIN_ACCOUNTS format: comma-separated
// entries of email:name:password. The name may be omitted
// (email:password), in which case the email's local part is used.
func ParseAdminAccounts(raw string) ([]AdminAccount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var accounts []AdminAccount
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		var account AdminAccount
		switch len(parts) {
		case 2:
			account = AdminAccount{Email: parts[0], Password: parts[1]}
		case 3:
			account = AdminAccount{Email: parts[0], Name: parts[1], Password: parts[2]}
		default:
			return nil, fmt.Errorf("entry %q must be email:password or email:name:password", entry)
		}

		account.Email = strings.TrimSpace(account.Email)
		if account.Email == "" || !strings.Contains(account.Email, "@") {
			return nil, fmt.Errorf("entry %q has an invalid email", entry)
		}
		if account.Password == "" {
			return nil, fmt.Errorf("entry for %s has an empty password", account.Email)
		}
		if account.Name == "" {
			account.Name = account.Email[:strings.Index(account.Email, "@")]
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
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

	if c.Data.BasePath == "" {
		return errors.New("data base path cannot be empty after expansion")
	}

	// SMTP and CDN settings may be empty in development; the services
	// that need them fail loudly at startup when unset in production.

	return nil
}

// expandDataPath expands ~ and makes the path absolute. Defaults to
// ~/Framelight/data when unset.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Framelight", "data")

	expanded, err := expandPath(c.Data.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Data.BasePath = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// splitList splits a comma-separated list, trimming whitespace.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
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

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Real env vars take precedence over the .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
