// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the attendance tracker API server.

The attendance tracker is a small HR service: it keeps an employee roster
and one Present/Absent record per employee per day, and serves a daily
register, per-employee history and a dashboard summary.

# Starting the Server

The server reads flags, then environment variables (a .env file is loaded
first), then defaults:

	DATABASE_URL=file:attendance.db go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres connection string or SQLite file

Optional settings:

  - DATABASE_TYPE (-t): postgres or sqlite (default: sqlite)
  - PORT (-p): Server port (default: 8000)
  - CORS_ORIGIN (-origin): Allowed origin (default: echo request origin)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)
  - APP_TIMEZONE (-tz): Zone deciding "today" (default: Local)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (employees, attendance, dashboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, CORS, logging, JSON helpers
  - models: Request/response types and the Date type
  - validation: Struct validation and field messages
  - db: Connection, schema creation, error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
