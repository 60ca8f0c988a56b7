package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	LogLevel        string
	DatabaseType    string
	DatabasePath    string
	DatabaseURL     string
	MigrationsPath  string
	AudioPath       string
	SessionSecret   string
	SessionDuration time.Duration

	// Guardian OAuth (Google)
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectBase  string

	// Progress report email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./hanziclash.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		AudioPath:       getEnv("AUDIO_PATH", "./static/audio"),
		SessionSecret:   getEnv("SESSION_SECRET", "dev-only-secret"),
		SessionDuration: 24 * time.Hour,

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		OAuthRedirectBase:  getEnv("OAUTH_REDIRECT_BASE_URL", "http://localhost:8080"),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Hanzi Clash"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
