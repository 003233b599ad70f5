package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// StorageType selects the save-game backend: "redis" or "file".
	StorageType string
	RedisURL    string
	SavePath    string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StorageType: strings.ToLower(getEnv("STORAGE_TYPE", "file")),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		SavePath:    getEnv("SAVE_PATH", defaultSavePath()),
	}
}

func defaultSavePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./saves"
	}
	return home + "/.rusty-rogues"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
