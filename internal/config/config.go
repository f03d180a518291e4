package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// Store selects the backend: "memory" (default) or "redis".
	Store     string
	RedisURL  string
	RedisPass string
	RedisDB   int

	ClockStart    int
	ClockInterval time.Duration
	SignupBonus   decimal.Decimal
	EntryFee      decimal.Decimal
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		Store:     getEnv("STORE", "memory"),
		RedisURL:  getEnv("REDIS_URL", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
	}
	cfg.RedisDB = db

	clockStart, err := strconv.Atoi(getEnv("CLOCK_START", "60"))
	if err != nil || clockStart < 0 {
		return nil, fmt.Errorf("invalid CLOCK_START: %v", err)
	}
	cfg.ClockStart = clockStart

	interval, err := time.ParseDuration(getEnv("CLOCK_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLOCK_INTERVAL: %v", err)
	}
	cfg.ClockInterval = interval

	bonus, err := decimal.NewFromString(getEnv("SIGNUP_BONUS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNUP_BONUS: %v", err)
	}
	cfg.SignupBonus = bonus

	fee, err := decimal.NewFromString(getEnv("ENTRY_FEE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENTRY_FEE: %v", err)
	}
	cfg.EntryFee = fee

	switch cfg.Store {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("invalid STORE: %s", cfg.Store)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
