package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	GeminiAPIKey                     string `mapstructure:"GEMINI_API_KEY"`
	GoogleAPIKey                     string `mapstructure:"GOOGLE_API_KEY"`
	GeminiModel                      string `mapstructure:"GEMINI_MODEL"`
	AdminEmails                      string `mapstructure:"ADMIN_EMAILS"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	MaxHistoryTurns                  int    `mapstructure:"MAX_HISTORY_TURNS"`
	MaxInlineImageBytes              int    `mapstructure:"MAX_INLINE_IMAGE_BYTES"`
}

var appConfig *Config

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("MAX_HISTORY_TURNS", 20)
	viper.SetDefault("MAX_INLINE_IMAGE_BYTES", 4<<20) // 4 MiB per inline image

	// Bind environment variables
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("GEMINI_API_KEY")
	viper.BindEnv("GOOGLE_API_KEY")
	viper.BindEnv("GEMINI_MODEL")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("MAX_HISTORY_TURNS")
	viper.BindEnv("MAX_INLINE_IMAGE_BYTES")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required")
	}
	if cfg.MaxHistoryTurns <= 0 {
		return nil, errors.New("MAX_HISTORY_TURNS must be positive")
	}
	if cfg.MaxInlineImageBytes <= 0 {
		return nil, errors.New("MAX_INLINE_IMAGE_BYTES must be positive")
	}
	// GEMINI_API_KEY / GOOGLE_API_KEY may both be empty: the key can also be
	// supplied through the admin-managed settings document at runtime.

	appConfig = &cfg
	return appConfig, nil
}

// DefaultGeminiKey returns the environment-supplied Gemini API key,
// trying the two recognized variable names in order. May be empty.
func (c *Config) DefaultGeminiKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.GoogleAPIKey
}

// AdminEmailList splits the configured comma-separated admin address list.
// Surrounding whitespace is trimmed per entry; the addresses themselves are
// matched exactly (case-sensitive) against token emails.
func (c *Config) AdminEmailList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

// GetConfig returns the loaded application configuration.
// It will panic if LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
