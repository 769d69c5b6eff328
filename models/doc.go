// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - EmployeeRequest: employee_id, full_name, email, department
  - PatchEmployeeRequest: same fields, all optional
  - MarkAttendanceRequest: employee, date, status

Request types carry go-playground/validator tags; see package validation.

# Domain Types

  - Employee: directory entry with computed total_present_days
  - Attendance: one status for one employee on one date, with the
    employee's display name attached

# Response Types

  - DailyAttendanceRow: roster line for the daily register (status is
    null when unmarked)
  - DashboardSummary: totals, today's counts, per-department counts and
    recent activity
  - ErrorResponse: error, message, fields

# Dates

Date wraps time.Time and serializes as YYYY-MM-DD in JSON and SQL:

	d, err := models.ParseDate("2024-01-01")

# Constants

Status values:

	StatusPresent = "Present"
	StatusAbsent  = "Absent"
*/
package models
