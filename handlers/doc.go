// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the attendance tracker API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - EmployeeHandler: Employee CRUD and the department list
  - AttendanceHandler: Marking attendance, daily register, history
  - DashboardHandler: Aggregate counts for the landing page

Handlers are created via constructor functions that accept *sql.DB and Config:

	employeeHandler := handlers.NewEmployeeHandler(db, cfg)

# Employees

Employee ID and email are unique without regard to case. Emails are stored
lowercased. Each employee carries total_present_days, computed from
attendance at read time.

	GET    /employees/      → List
	POST   /employees/      → Create (201)
	GET    /employees/{id}/ → Get
	PUT    /employees/{id}/ → Update
	PATCH  /employees/{id}/ → Patch
	DELETE /employees/{id}/ → Delete (204, cascades to attendance)

# Attendance

There is at most one record per employee per date. Marking an existing
(employee, date) pair overwrites its status with a single upsert:

	INSERT ... ON CONFLICT (employee_pk, date) DO UPDATE SET status = EXCLUDED.status

The daily register lists every employee for a date; status is null for
employees with no record.

# Validation

Request bodies are checked with the validation package. Failures are
written with middleware.ValidationErrorResponse as a field → message map.
*/
package handlers
