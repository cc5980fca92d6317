package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DBPath           string
	LogLevel         string
	MaxRetries       int
	SessionTTLHours  int
	StatsWorkerCount int
	StatsQueueSize   int
	LeaderboardSize  int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "file:codequest.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		MaxRetries:       envIntOr("MAX_RETRIES", 3),
		SessionTTLHours:  envIntOr("SESSION_TTL_HOURS", 720),
		StatsWorkerCount: envIntOr("STATS_WORKER_COUNT", 2),
		StatsQueueSize:   envIntOr("STATS_QUEUE_SIZE", 64),
		LeaderboardSize:  envIntOr("LEADERBOARD_SIZE", 10),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
