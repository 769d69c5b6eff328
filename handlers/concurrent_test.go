// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/attendance-tracker/models"
	"github.com/danielhkuo/attendance-tracker/testutil"
)

// TestConcurrentAttendanceMarks verifies that simultaneous marks for the same
// employee and date never produce duplicate rows
func TestConcurrentAttendanceMarks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAttendanceHandler(db, cfg)

	empID := testutil.CreateTestEmployee(t, db, "E1", "Alice Smith", "alice@example.com", "Engineering")

	numRequests := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			status := models.StatusPresent
			if idx%2 == 1 {
				status = models.StatusAbsent
			}

			body, _ := json.Marshal(models.MarkAttendanceRequest{
				Employee: empID,
				Date:     "2024-01-01",
				Status:   status,
			})
			req := httptest.NewRequest("POST", "/attendance/", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Mark(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful marks, got %d", numRequests, successCount.Load())
	}

	if n := testutil.CountRows(t, db, "attendance", "employee_pk = $1", empID); n != 1 {
		t.Errorf("Expected 1 attendance row after concurrent marks, got %d", n)
	}

	var status string
	if err := db.QueryRow("SELECT status FROM attendance WHERE employee_pk = $1", empID).Scan(&status); err != nil {
		t.Fatalf("Failed to query status: %v", err)
	}
	if status != models.StatusPresent && status != models.StatusAbsent {
		t.Errorf("Unexpected stored status %q", status)
	}
}

// TestConcurrentDuplicateEmployees verifies that only one of several
// simultaneous creates with the same email wins
func TestConcurrentDuplicateEmployees(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewEmployeeHandler(db, cfg)

	numRequests := 5
	var successCount, rejectedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/employees/", models.EmployeeRequest{
				EmployeeID: fmt.Sprintf("E%d", idx),
				FullName:   "Same Person",
				Email:      "same@example.com",
				Department: "Engineering",
			}, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusBadRequest:
				rejectedCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful create, got %d", successCount.Load())
	}
	if int(rejectedCount.Load()) != numRequests-1 {
		t.Errorf("Expected %d rejected creates, got %d", numRequests-1, rejectedCount.Load())
	}

	if n := testutil.CountRows(t, db, "employee", "email = $1", "same@example.com"); n != 1 {
		t.Errorf("Expected 1 employee in database, got %d", n)
	}
}

// TestParallelEmployeesAndMarks creates distinct employees and marks them
// concurrently
func TestParallelEmployeesAndMarks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	employees := NewEmployeeHandler(db, cfg)
	attendance := NewAttendanceHandler(db, cfg)

	numEmployees := 5
	var wg sync.WaitGroup

	for i := 0; i < numEmployees; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/employees/", models.EmployeeRequest{
				EmployeeID: fmt.Sprintf("P%d", idx),
				FullName:   fmt.Sprintf("Parallel %d", idx),
				Email:      fmt.Sprintf("parallel%d@example.com", idx),
				Department: "Operations",
			}, nil)
			w := httptest.NewRecorder()
			employees.Create(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Employee %d creation failed: %d", idx, w.Code)
				return
			}

			var emp models.Employee
			if err := json.NewDecoder(w.Body).Decode(&emp); err != nil {
				t.Errorf("Employee %d decode failed: %v", idx, err)
				return
			}

			for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
				req := testutil.MakeRequest("POST", "/attendance/", models.MarkAttendanceRequest{
					Employee: emp.ID,
					Date:     date,
					Status:   models.StatusPresent,
				}, nil)
				w := httptest.NewRecorder()
				attendance.Mark(w, req)

				if w.Code != http.StatusOK {
					t.Errorf("Employee %d mark %s failed: %d", idx, date, w.Code)
				}
			}
		}(i)
	}

	wg.Wait()

	if n := testutil.CountRows(t, db, "employee", ""); n != numEmployees {
		t.Errorf("Expected %d employees, got %d", numEmployees, n)
	}
	if n := testutil.CountRows(t, db, "attendance", ""); n != numEmployees*3 {
		t.Errorf("Expected %d attendance rows, got %d", numEmployees*3, n)
	}
}
