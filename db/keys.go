// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// EmployeeIDKey returns the value stored in employee.employee_id_key.
// Two employee IDs collide when their keys are equal, so "ÄB", "äb" and a
// decomposed "äb" all map to the same key. SQL LOWER() is not used
// because SQLite only folds ASCII.
func EmployeeIDKey(employeeID string) string {
	// A Caser is stateful; one per call
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(employeeID)))
}
