package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	ServerPort     string
	SessionSecret  string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	GoogleClientID string
	LogLevel       string
	LogFormat      string
	Environment    string
}

func Load() *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api/v1"),
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		SessionSecret:  getEnv("SESSION_SECRET", "changeme"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        0,
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// CacheEnabled reports whether the session hydration cache should be used.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
