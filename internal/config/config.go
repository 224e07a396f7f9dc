package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr        string
	LogLevel        slog.Level
	CardsDir        string
	CardExt         string
	DeckSeed        *uint64
	ShutdownTimeout time.Duration
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		CardsDir:        envOr("CARDS_DIR", "cards"),
		CardExt:         envOr("CARD_EXT", ".jpg"),
		ShutdownTimeout: 10 * time.Second,
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}

	if v := os.Getenv("DECK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DECK_SEED %q: %w", v, err)
		}
		c.DeckSeed = &seed
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
