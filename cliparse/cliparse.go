package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string

	// BaseURL is the externally reachable root of this server, used to
	// build the grid-page URL for PNG capture. Defaults to localhost on
	// the configured port.
	BaseURL string

	// PurgeRetentionDays controls how long an expired poll stays readable
	// before the nightly purge removes it. Zero disables the purge.
	PurgeRetentionDays int
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("timegrid", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "External base URL for grid capture")
	fs.IntVar(&cfg.PurgeRetentionDays, "purge-days", -1, "Days to keep expired polls (0 disables purging)")

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
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:" + strconv.Itoa(cfg.Port)
	}

	if cfg.PurgeRetentionDays < 0 {
		if daysStr := os.Getenv("PURGE_RETENTION_DAYS"); daysStr != "" {
			days, err := strconv.Atoi(daysStr)
			if err != nil || days < 0 {
				return Config{}, errors.New("invalid PURGE_RETENTION_DAYS env variable")
			}
			cfg.PurgeRetentionDays = days
		} else {
			cfg.PurgeRetentionDays = 90 // default
		}
	}

	return cfg, nil
}
