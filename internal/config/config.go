// Package config handles configuration loading for the ticket service.
package config

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the ticket service.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	TokenSecret    string
	TokenExpiry    time.Duration
	AllowedOrigins []string
	Cookie         CookieConfig
	Port           string
	Environment    string
}

// CookieConfig holds the security attributes applied to the session cookie.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:         GetEnvRequired("DB_HOST"),
		DBPort:         GetEnvRequired("DB_PORT"),
		DBUser:         GetEnvRequired("DB_USER"),
		DBPassword:     GetEnvRequired("DB_PASSWORD"),
		DBName:         GetEnvRequired("DB_NAME"),
		RedisHost:      GetEnvRequired("REDIS_HOST"),
		RedisPort:      GetEnvRequired("REDIS_PORT"),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		TokenSecret:    GetEnvRequired("TOKEN_SECRET"),
		TokenExpiry:    parseDuration(GetEnv("TOKEN_EXPIRY", "24h"), 24*time.Hour),
		AllowedOrigins: splitOrigins(GetEnv("ALLOWED_ORIGINS", "")),
		Cookie: CookieConfig{
			Domain: GetEnv("COOKIE_DOMAIN", ""),
			Path:   "/",
			// The session cookie crosses sites, so it must be
			// SameSite=None and Secure.
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		},
		Port:        GetEnv("PORT", "8080"),
		Environment: GetEnv("ENVIRONMENT", "development"),
	}
}

// GetEnv returns the value of the environment variable or the default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the environment variable or exits.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

// HealthTimeout bounds each dependency health check.
func (c *Config) HealthTimeout() time.Duration {
	return 2 * time.Second
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitOrigins(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
