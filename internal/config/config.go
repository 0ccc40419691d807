package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/crickstack/auction-room/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	RosterURL        string
	RosterPath       string
	RosterTimeout    time.Duration
	RosterMaxRetries int

	AuctionStartingWallet int
	AuctionSquadSize      int
	AuctionMinBasePrice   int

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	rosterURL := strings.TrimSpace(getEnv("ROSTER_URL", ""))
	rosterPath := strings.TrimSpace(getEnv("ROSTER_PATH", ""))
	if rosterURL != "" && rosterPath != "" {
		return Config{}, fmt.Errorf("ROSTER_URL and ROSTER_PATH are mutually exclusive")
	}
	rosterTimeout, err := time.ParseDuration(getEnv("ROSTER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_TIMEOUT: %w", err)
	}
	if rosterTimeout <= 0 {
		return Config{}, fmt.Errorf("ROSTER_TIMEOUT must be > 0")
	}
	rosterMaxRetries, err := getEnvAsInt("ROSTER_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_MAX_RETRIES: %w", err)
	}
	if rosterMaxRetries < 0 {
		return Config{}, fmt.Errorf("ROSTER_MAX_RETRIES must be >= 0")
	}

	startingWallet, err := getEnvAsInt("AUCTION_WALLET", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUCTION_WALLET: %w", err)
	}
	squadSize, err := getEnvAsInt("AUCTION_SQUAD_SIZE", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUCTION_SQUAD_SIZE: %w", err)
	}
	minBasePrice, err := getEnvAsInt("AUCTION_MIN_BASE_PRICE", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUCTION_MIN_BASE_PRICE: %w", err)
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "auction-room"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		RosterURL:        rosterURL,
		RosterPath:       rosterPath,
		RosterTimeout:    rosterTimeout,
		RosterMaxRetries: rosterMaxRetries,

		AuctionStartingWallet: startingWallet,
		AuctionSquadSize:      squadSize,
		AuctionMinBasePrice:   minBasePrice,

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case EnvDev, EnvStage, EnvProd:
		return v, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
