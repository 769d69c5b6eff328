// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case DialectPostgres:
		ddl = postgresSchema
	case DialectSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Employees
CREATE TABLE IF NOT EXISTS employee (
    id BIGSERIAL PRIMARY KEY,
    employee_id VARCHAR(50) NOT NULL,
    employee_id_key TEXT NOT NULL,
    full_name VARCHAR(200) NOT NULL,
    email VARCHAR(254) NOT NULL,
    department VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_employee_id_key ON employee (employee_id_key);
CREATE UNIQUE INDEX IF NOT EXISTS idx_employee_email_lower ON employee (LOWER(email));
CREATE INDEX IF NOT EXISTS idx_employee_department ON employee (department);
CREATE INDEX IF NOT EXISTS idx_employee_created_at ON employee (created_at);

-- Attendance (one row per employee per day)
CREATE TABLE IF NOT EXISTS attendance (
    id BIGSERIAL PRIMARY KEY,
    employee_pk BIGINT NOT NULL REFERENCES employee(id) ON DELETE CASCADE,
    date DATE NOT NULL,
    status VARCHAR(7) NOT NULL DEFAULT 'Present' CHECK (status IN ('Present', 'Absent')),
    CONSTRAINT unique_employee_date UNIQUE (employee_pk, date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date);
`

const sqliteSchema = `
-- Employees
CREATE TABLE IF NOT EXISTS employee (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id TEXT NOT NULL,
    employee_id_key TEXT NOT NULL,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    department TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_employee_id_key ON employee (employee_id_key);
CREATE UNIQUE INDEX IF NOT EXISTS idx_employee_email_lower ON employee (LOWER(email));
CREATE INDEX IF NOT EXISTS idx_employee_department ON employee (department);
CREATE INDEX IF NOT EXISTS idx_employee_created_at ON employee (created_at);

-- Attendance (one row per employee per day)
CREATE TABLE IF NOT EXISTS attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_pk INTEGER NOT NULL REFERENCES employee(id) ON DELETE CASCADE,
    date DATE NOT NULL,
    status TEXT NOT NULL DEFAULT 'Present' CHECK (status IN ('Present', 'Absent')),
    CONSTRAINT unique_employee_date UNIQUE (employee_pk, date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date);
`
