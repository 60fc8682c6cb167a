// Package config resolves server settings from flags, the environment and an
// optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	Port           int
	DBPath         string
	StaticDir      string
	PublicOrigin   string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Load parses args, falling back to environment variables. A .env file in the
// working directory is loaded first if present; it never overrides variables
// that are already set.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	var origins, level string

	fs := flag.NewFlagSet("tierboard", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", 0, "Server port")
	fs.StringVar(&cfg.DBPath, "db", getEnv("DB_PATH", "./tierboard.db"), "SQLite database path")
	fs.StringVar(&cfg.StaticDir, "static", getEnv("STATIC_DIR", "../frontend/dist"), "Editor static files directory")
	fs.StringVar(&cfg.PublicOrigin, "origin", os.Getenv("PUBLIC_ORIGIN"), "Public origin used in share links")
	fs.StringVar(&origins, "cors", getEnv("ALLOWED_ORIGINS", "http://localhost:*"), "Comma-separated allowed CORS origins")
	fs.StringVar(&level, "log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if cfg.PublicOrigin == "" {
		cfg.PublicOrigin = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	cfg.PublicOrigin = strings.TrimSuffix(cfg.PublicOrigin, "/")

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", level)
	}

	return cfg, nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
