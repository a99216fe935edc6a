package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains client settings sourced from the environment.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	SubmitDemo bool
	LogLevel   string
	LogFormat  string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	timeout := 10 * time.Second
	if raw := os.Getenv("API_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	submitDemo := true
	if raw := os.Getenv("SUBMIT_DEMO"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			submitDemo = parsed
		}
	}

	return Config{
		APIBaseURL: envOrDefault("API_URL", "http://localhost:8080"),
		Timeout:    timeout,
		SubmitDemo: submitDemo,
		LogLevel:   envOrDefault("LOG_LEVEL", "warn"),
		LogFormat:  envOrDefault("LOG_FORMAT", "text"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
