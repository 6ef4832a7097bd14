package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BotToken           string
	APIURLTemplate     string
	APIKey             string
	LogLevel           string
	PollTimeoutSeconds int
	APITimeoutSeconds  int
	DailyLimit         int
	RedisAddr          string
}

// Load reads configuration from the environment. BOT_TOKEN,
// API_URL_TEMPLATE and API_KEY are required; everything else has a
// default. An empty REDIS_ADDR keeps the quota ledger in process memory.
func Load() (Config, error) {
	pollTimeout, err := getInt("POLL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return Config{}, err
	}

	apiTimeout, err := getInt("API_TIMEOUT_SECONDS", 8)
	if err != nil {
		return Config{}, err
	}

	dailyLimit, err := getInt("DAILY_LIMIT", 1)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		APIURLTemplate:     strings.TrimSpace(os.Getenv("API_URL_TEMPLATE")),
		APIKey:             strings.TrimSpace(os.Getenv("API_KEY")),
		LogLevel:           getString("LOG_LEVEL", "info"),
		PollTimeoutSeconds: pollTimeout,
		APITimeoutSeconds:  apiTimeout,
		DailyLimit:         dailyLimit,
		RedisAddr:          getString("REDIS_ADDR", ""),
	}

	if cfg.BotToken == "" {
		return Config{}, errors.New("BOT_TOKEN is required")
	}
	if cfg.APIURLTemplate == "" {
		return Config{}, errors.New("API_URL_TEMPLATE is required")
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("API_KEY is required")
	}

	if cfg.PollTimeoutSeconds <= 0 {
		cfg.PollTimeoutSeconds = 30
	}
	if cfg.APITimeoutSeconds <= 0 {
		cfg.APITimeoutSeconds = 8
	}
	if cfg.DailyLimit <= 0 {
		cfg.DailyLimit = 1
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
