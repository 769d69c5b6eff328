// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads a .env file into the environment (existing variables win),
then ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Postgres connection string or SQLite file DSN (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)
  - AllowedOrigin: CORS origin (default: echo the request origin)
  - Timezone / Location: zone used for "today" on the dashboard (default: Local)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-origin      Allowed CORS origin
	-log-level   Log level
	-log-format  Log format
	-tz          Time zone

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → -origin
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format
	APP_TIMEZONE  → -tz

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number
  - the database type, log format or time zone is not recognised
*/
package cliparse
