package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken string

	// Database
	DatabasePath string

	// Leaderboard refresh / nickname sync
	RefreshIntervalMinutes int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_BOT_TOKEN"),
		DatabasePath: getEnvOrDefault("DATABASE_PATH", "./data/ranked.db"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}

	// Parse leaderboard refresh interval
	refreshStr := getEnvOrDefault("REFRESH_INTERVAL_MINUTES", "30")
	refresh, err := strconv.Atoi(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL_MINUTES: %w", err)
	}
	cfg.RefreshIntervalMinutes = refresh

	// Validate required fields
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
