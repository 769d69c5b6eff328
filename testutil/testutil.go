// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/attendance-tracker/cliparse"
	"github.com/danielhkuo/attendance-tracker/db"
)

// TestDBURLEnv names the variable that points tests at a Postgres server.
// When it is unset tests use a throwaway SQLite file.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	dialect, dsn := testDatabase(t)

	conn, err := db.Open(ctx, dialect, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if dialect == db.DialectPostgres {
		// Clean up tables before each test
		_, err = conn.ExecContext(ctx, `
			DROP TABLE IF EXISTS attendance CASCADE;
			DROP TABLE IF EXISTS employee CASCADE;
		`)
		if err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func testDatabase(t *testing.T) (dialect, dsn string) {
	if url := os.Getenv(TestDBURLEnv); url != "" {
		return db.DialectPostgres, url
	}
	return db.DialectSQLite, "file:" + filepath.Join(t.TempDir(), "attendance_test.db")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.DialectSQLite,
		LogLevel:     "info",
		LogFormat:    "text",
		Timezone:     "UTC",
		Location:     time.UTC,
	}
}

// CreateTestEmployee inserts an employee and returns its internal id
func CreateTestEmployee(t *testing.T, conn *sql.DB, employeeID, fullName, email, department string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO employee (employee_id, employee_id_key, full_name, email, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, employeeID, db.EmployeeIDKey(employeeID), fullName, email, department, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test employee: %v", err)
	}

	return id
}

// MarkTestAttendance records a status for an employee on a YYYY-MM-DD date
func MarkTestAttendance(t *testing.T, conn *sql.DB, employeePK int64, date, status string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO attendance (employee_pk, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, employeePK, date, status).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test attendance: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table matching where (may be empty)
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
