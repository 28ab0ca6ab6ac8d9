package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config holds all runtime configuration for folio.
type Config struct {
	Listen        string
	DataDir       string
	AdminToken    string
	MaxUploadSize int64
	CacheTTL      time.Duration
	CacheMaxSize  int64
	DefaultTheme  string
}

// Parse reads configuration from CLI flags with environment variable fallback.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("folio", flag.ContinueOnError)

	cfg := &Config{}

	fs.StringVar(&cfg.Listen, "listen", envOr("FOLIO_LISTEN", ":8080"), "Listen address")
	fs.StringVar(&cfg.DataDir, "data-dir", envOr("FOLIO_DATA_DIR", "./data"), "Directory for portfolio data and uploads")
	fs.StringVar(&cfg.AdminToken, "admin-token", envOr("FOLIO_ADMIN_TOKEN", ""), "Bearer token for mutating endpoints (empty disables them)")
	maxUploadSize := fs.String("max-upload-size", envOr("FOLIO_MAX_UPLOAD_SIZE", "10MB"), "Max resume/photo upload size (e.g. 10MB)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", envDurationOr("FOLIO_CACHE_TTL", 5*time.Minute), "Rendered page cache TTL")
	cacheMaxSize := fs.String("cache-max-size", envOr("FOLIO_CACHE_MAX_SIZE", "20MB"), "Max rendered page cache size (e.g. 20MB)")
	fs.StringVar(&cfg.DefaultTheme, "default-theme", envOr("FOLIO_DEFAULT_THEME", "auto"), "Default theme: auto, light, or dark")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	cfg.MaxUploadSize, err = parseByteSize(*maxUploadSize)
	if err != nil {
		return nil, fmt.Errorf("parse max-upload-size: %w", err)
	}

	cfg.CacheMaxSize, err = parseByteSize(*cacheMaxSize)
	if err != nil {
		return nil, fmt.Errorf("parse cache-max-size: %w", err)
	}

	switch cfg.DefaultTheme {
	case "auto", "light", "dark":
	default:
		return nil, fmt.Errorf("invalid default-theme %q: must be auto, light, or dark", cfg.DefaultTheme)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

// parseByteSize parses a human-readable byte size like "100MB", "5KB", "1GB".
func parseByteSize(s string) (int64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty size string")
	}

	// Find where the numeric part ends
	i := 0
	for i < len(s) && ((s[i] >= '0' && s[i] <= '9') || s[i] == '.') {
		i++
	}

	numStr := s[:i]
	unit := s[i:]

	var num float64
	if _, err := fmt.Sscanf(numStr, "%f", &num); err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	var multiplier int64
	switch unit {
	case "", "B":
		multiplier = 1
	case "KB", "kb":
		multiplier = 1024
	case "MB", "mb":
		multiplier = 1024 * 1024
	case "GB", "gb":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size unit %q in %q", unit, s)
	}

	return int64(num * float64(multiplier)), nil
}
