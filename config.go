package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config captures runtime settings for the API server.
type config struct {
	HTTPAddress        string
	GinMode            string
	TrustedProxies     []string // nil means trust no proxy headers
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
}

// loadConfig reads an optional .env file and then the environment, applying
// local-dev defaults for anything unset.
func loadConfig() config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[loadConfig] ignoring .env: %v", err)
	}

	return config{
		HTTPAddress:        getEnv("HTTP_ADDRESS", "localhost:3000"),
		GinMode:            getEnv("GIN_MODE", "release"),
		TrustedProxies:     getListEnv("TRUSTED_PROXIES", ""),
		CORSAllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", "*"),
		MetricsEnabled:     getBoolEnv("METRICS_ENABLED", true),
		ReadTimeout:        getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:       getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getListEnv splits a comma-separated value, dropping blanks. An empty result
// is returned as nil.
func getListEnv(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, fallback), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
