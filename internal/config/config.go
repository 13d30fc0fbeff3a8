package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	BotToken      string
	DBPath        string
	DevIDs        []int64
	SnapshotStore string
	RedisAddr     string
	RulesPath     string
	ActivePath    string
	SpinDelay     time.Duration
	SecretTaps    int
	Location      *time.Location
	LogLevel      string
}

// Load reads the environment, seeding it from .env when that file exists.
// Variables already set in the process win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}

	cfg := &Config{
		BotToken:      token,
		DBPath:        getEnvOrDefault("DB_PATH", "casino.db"),
		DevIDs:        parseDevIDs(os.Getenv("DEV_IDS")),
		SnapshotStore: getEnvOrDefault("SNAPSHOT_STORE", StoreSQLite),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RulesPath:     getEnvOrDefault("RULES_PATH", "rules.yaml"),
		ActivePath:    getEnvOrDefault("ACTIVE_PATH", "active.json"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.SnapshotStore != StoreSQLite && cfg.SnapshotStore != StoreRedis {
		return nil, fmt.Errorf("SNAPSHOT_STORE must be %q or %q, got %q", StoreSQLite, StoreRedis, cfg.SnapshotStore)
	}

	delay, err := time.ParseDuration(getEnvOrDefault("SPIN_DELAY", "2s"))
	if err != nil || delay < 0 {
		return nil, fmt.Errorf("invalid SPIN_DELAY: %q", os.Getenv("SPIN_DELAY"))
	}
	cfg.SpinDelay = delay

	taps, err := strconv.Atoi(getEnvOrDefault("SECRET_TAPS", "7"))
	if err != nil || taps <= 0 {
		return nil, fmt.Errorf("invalid SECRET_TAPS: %q", os.Getenv("SECRET_TAPS"))
	}
	cfg.SecretTaps = taps

	loc, err := time.LoadLocation(getEnvOrDefault("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

func (c *Config) IsDev(userID int64) bool {
	for _, id := range c.DevIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func parseDevIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var ids []int64
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
