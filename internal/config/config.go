// Package config читает настройки клиента из окружения.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config содержит настройки клиента.
type Config struct {
	// APIURL — адрес REST API платформы.
	APIURL string

	// TokenFile — путь к файлу с сохранённым токеном.
	TokenFile string

	// LogLevel — минимальный уровень логов.
	LogLevel slog.Level
}

// Переменные окружения
const (
	envAPIURL    = "QUIZHUB_API_URL"
	envTokenFile = "QUIZHUB_TOKEN_FILE"
	envLogLevel  = "QUIZHUB_LOG_LEVEL"
)

// Load читает конфигурацию из .env файла и окружения.
// .env необязателен, переменные окружения имеют приоритет.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL:    getEnv(envAPIURL, "http://localhost:8000/api"),
		TokenFile: getEnv(envTokenFile, defaultTokenFile()),
		LogLevel:  parseLevel(os.Getenv(envLogLevel)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".quizhub-token"
	}

	return filepath.Join(home, ".quizhub", "token")
}

func parseLevel(value string) slog.Level {
	switch value {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
