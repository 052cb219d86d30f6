package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              int
	LogLevel          string
	DataDir           string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	ChatTemperature   float64
	ChatMaxTokens     int
	ReportTemperature float64
	ReportMaxTokens   int
	RequestTimeout    time.Duration
}

func Load() Config {
	return Config{
		Port:              envInt("RESCUE_PORT", 8080),
		LogLevel:          envStr("LOG_LEVEL", "info"),
		DataDir:           envStr("RESCUE_DATA_DIR", "./data"),
		GeminiAPIKey:      envStr("GEMINI_API_KEY", ""),
		GeminiModel:       envStr("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:     envStr("GEMINI_BASE_URL", ""),
		ChatTemperature:   envFloat("RESCUE_CHAT_TEMPERATURE", 0.7),
		ChatMaxTokens:     envInt("RESCUE_CHAT_MAX_TOKENS", 1024),
		ReportTemperature: envFloat("RESCUE_REPORT_TEMPERATURE", 0.2),
		ReportMaxTokens:   envInt("RESCUE_REPORT_MAX_TOKENS", 4096),
		RequestTimeout:    envDuration("RESCUE_REQUEST_TIMEOUT", 60*time.Second),
	}
}

// Validate checks the fields that have no workable default. The Gemini key is
// an injected secret and must never appear in source or request URLs.
func (c Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
