// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages database connections and schema for the attendance tracker.

# Connecting

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(ctx, db.DialectPostgres, "postgres://...")
	conn, err := db.Open(ctx, db.DialectSQLite, "file:attendance.db")

SQLite DSNs get foreign_keys(1) and busy_timeout(5000) pragmas appended.
Without foreign keys SQLite ignores ON DELETE CASCADE.

# Schema Creation

CreateSchema creates all tables and indexes if they don't exist:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

# Tables

  - employee: id, employee_id, employee_id_key, full_name, email,
    department, created_at
  - attendance: id, employee_pk, date, status

# Constraints

  - idx_employee_id_key: UNIQUE (employee_id_key), the Unicode case fold
    of employee_id computed by EmployeeIDKey
  - idx_employee_email_lower: UNIQUE (LOWER(email))
  - unique_employee_date: UNIQUE (employee_pk, date), the target of the
    attendance upsert (INSERT ... ON CONFLICT DO UPDATE)
  - attendance.employee_pk REFERENCES employee(id) ON DELETE CASCADE
  - attendance.status CHECK IN ('Present', 'Absent')

# Error Classification

UniqueViolation recognises unique constraint failures from both drivers:

	if constraint, ok := db.UniqueViolation(err); ok {
		// 400 with a field-level message
	}
*/
package db
