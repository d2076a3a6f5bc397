// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string (required)
  - BaseURL: Public base URL, used by the PNG exporter to reach the
    grid page (default: http://127.0.0.1:{port})
  - PurgeRetentionDays: Days an expired poll survives before the
    nightly purge (default: 90; 0 disables purging)

# CLI Flags

	-p          Server port
	-d          Database URL
	-base-url   Public base URL
	-purge-days Expired poll retention in days

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	BASE_URL             → -base-url
	PURGE_RETENTION_DAYS → -purge-days

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing.
*/
package cliparse
