package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServiceName string
	Port        int
	DatabaseURL string
	ConsulAddr  string
	ConsulTags  []string
	Hostname    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	LogLevel    string
}

// Load builds Config from environment with sensible defaults. The service
// name argument is used when SERVICE_NAME is unset, so each binary carries
// its own default registry identity.
func Load(defaultServiceName string, defaultPort int) *Config {
	return &Config{
		ServiceName: getEnv("SERVICE_NAME", defaultServiceName),
		Port:        getEnvInt("PORT", defaultPort),
		DatabaseURL: databaseURL(),
		ConsulAddr:  getEnv("CONSUL_HOST", "localhost") + ":" + getEnv("CONSUL_PORT", "8500"),
		ConsulTags:  splitTags(os.Getenv("CONSUL_TAGS")),
		Hostname:    getEnv("HOSTNAME", "localhost"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// databaseURL prefers DATABASE_URL and otherwise assembles a DSN from the
// discrete POSTGRES_* variables.
func databaseURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "postgres"),
		getEnv("POSTGRES_PASSWORD", "postgres"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "postgres"),
	)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
