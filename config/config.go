package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModelAPIURL is used when MODEL_API_URL is not set.
const DefaultModelAPIURL = "http://localhost:8000"

// Config holds application configuration.
// It is built once at startup and passed down explicitly.
type Config struct {
	Port            string
	ModelAPIURL     string
	ModelAPITimeout time.Duration // 0 means no timeout
	SessionTTL      time.Duration
	MaxSessions     int
	AllowOrigins    string
}

// Load reads the configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		ModelAPIURL:     strings.TrimRight(getEnv("MODEL_API_URL", DefaultModelAPIURL), "/"),
		ModelAPITimeout: getEnvDuration("MODEL_API_TIMEOUT", 0),
		SessionTTL:      getEnvDuration("SESSION_TTL", 30*time.Minute),
		MaxSessions:     getEnvInt("MAX_SESSIONS", 10000),
		AllowOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		log.Printf("Invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}
