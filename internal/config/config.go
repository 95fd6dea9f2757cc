package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	BackendURL string
	ContentURL string

	CookieSecret string
	CookieSecure bool
	SessionTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads the environment, with an optional .env file for local runs.
// COOKIE_SECRET has no fallback: a guessable signing key is worse than a
// crash at startup.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional in containers
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("config: COOKIE_SECRET is required")
	}

	return &Config{
		Port:          getEnv("HTTP_PORT", "8080"),
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:5000/api"),
		ContentURL:    getEnv("CONTENT_URL", "https://jsonplaceholder.typicode.com"),
		CookieSecret:  secret,
		CookieSecure:  getBool("COOKIE_SECURE", false),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
