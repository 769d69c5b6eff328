// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/attendance-tracker/models"
	"github.com/danielhkuo/attendance-tracker/testutil"
)

func TestDashboardEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDashboardHandler(db, testutil.GetTestConfig())
	handler.now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest("GET", "/dashboard/", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.DashboardSummary
	testutil.AssertJSON(t, w, &summary)

	want := models.DashboardSummary{
		Today:          models.TodaySummary{Date: models.Date{Time: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}},
		Departments:    []models.DepartmentCount{},
		RecentActivity: []models.Attendance{},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestDashboardSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewDashboardHandler(db, testutil.GetTestConfig())
	handler.now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) }

	alice := testutil.CreateTestEmployee(t, db, "E1", "Alice Smith", "alice@example.com", "Engineering")
	bob := testutil.CreateTestEmployee(t, db, "E2", "Bob Jones", "bob@example.com", "Sales")
	carol := testutil.CreateTestEmployee(t, db, "E3", "Carol White", "carol@example.com", "Engineering")
	testutil.CreateTestEmployee(t, db, "E4", "Dan Brown", "dan@example.com", "Operations")

	// Today
	testutil.MarkTestAttendance(t, db, alice, "2024-01-10", models.StatusPresent)
	testutil.MarkTestAttendance(t, db, bob, "2024-01-10", models.StatusPresent)
	testutil.MarkTestAttendance(t, db, carol, "2024-01-10", models.StatusAbsent)
	// History
	testutil.MarkTestAttendance(t, db, alice, "2024-01-09", models.StatusAbsent)
	testutil.MarkTestAttendance(t, db, bob, "2024-01-08", models.StatusPresent)
	testutil.MarkTestAttendance(t, db, carol, "2024-01-07", models.StatusPresent)
	// Future-dated rows are not "today"
	testutil.MarkTestAttendance(t, db, alice, "2024-01-11", models.StatusAbsent)

	req := httptest.NewRequest("GET", "/dashboard/", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var summary models.DashboardSummary
	testutil.AssertJSON(t, w, &summary)

	if summary.TotalEmployees != 4 {
		t.Errorf("Expected 4 employees, got %d", summary.TotalEmployees)
	}
	if summary.Today.Date.String() != "2024-01-10" {
		t.Errorf("Expected today 2024-01-10, got %s", summary.Today.Date)
	}
	if summary.Today.Present != 2 || summary.Today.Absent != 1 {
		t.Errorf("Expected 2 present / 1 absent, got %d / %d", summary.Today.Present, summary.Today.Absent)
	}
	if summary.Today.Present+summary.Today.Absent > summary.TotalEmployees {
		t.Error("Marked count exceeds employee count")
	}

	wantDepts := []models.DepartmentCount{
		{Department: "Engineering", Count: 2},
		{Department: "Operations", Count: 1},
		{Department: "Sales", Count: 1},
	}
	if diff := cmp.Diff(wantDepts, summary.Departments); diff != "" {
		t.Errorf("Departments mismatch (-want +got):\n%s", diff)
	}

	if len(summary.RecentActivity) != recentActivityLimit {
		t.Fatalf("Expected %d recent records, got %d", recentActivityLimit, len(summary.RecentActivity))
	}
	var dates []string
	for _, rec := range summary.RecentActivity {
		dates = append(dates, rec.Date.String())
	}
	wantDates := []string{"2024-01-11", "2024-01-10", "2024-01-10", "2024-01-10", "2024-01-09"}
	if diff := cmp.Diff(wantDates, dates); diff != "" {
		t.Errorf("Recent activity dates mismatch (-want +got):\n%s", diff)
	}
	if summary.RecentActivity[0].EmployeeName != "Alice Smith" {
		t.Errorf("Expected recent activity to carry employee name, got %q", summary.RecentActivity[0].EmployeeName)
	}
}

func TestDashboardTodayUsesConfiguredZone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.Location = time.FixedZone("UTC+10", 10*60*60)

	handler := NewDashboardHandler(db, cfg)
	// 20:00 UTC on the 9th is already the 10th at UTC+10
	handler.now = func() time.Time { return time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC) }

	empID := testutil.CreateTestEmployee(t, db, "E1", "Alice Smith", "alice@example.com", "Engineering")
	testutil.MarkTestAttendance(t, db, empID, "2024-01-10", models.StatusPresent)

	summary, err := handler.summarize(httptest.NewRequest("GET", "/", nil).Context(), handler.today())
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	if got := summary.Today.Date.String(); got != "2024-01-10" {
		t.Errorf("Expected today 2024-01-10, got %s", got)
	}
	if summary.Today.Present != 1 {
		t.Errorf("Expected 1 present, got %d", summary.Today.Present)
	}
}

func TestDashboardCountsAfterDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	dashboard := NewDashboardHandler(db, cfg)
	dashboard.now = func() time.Time { return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) }
	employees := NewEmployeeHandler(db, cfg)

	alice := testutil.CreateTestEmployee(t, db, "E1", "Alice Smith", "alice@example.com", "Engineering")
	testutil.CreateTestEmployee(t, db, "E2", "Bob Jones", "bob@example.com", "Engineering")
	testutil.MarkTestAttendance(t, db, alice, "2024-01-10", models.StatusPresent)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/employees/%d/", alice), nil)
	req.SetPathValue("id", fmt.Sprint(alice))
	w := httptest.NewRecorder()
	employees.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = httptest.NewRecorder()
	dashboard.Summary(w, httptest.NewRequest("GET", "/dashboard/", nil))

	var summary models.DashboardSummary
	testutil.AssertJSON(t, w, &summary)

	if summary.TotalEmployees != 1 || summary.Today.Present != 0 || len(summary.RecentActivity) != 0 {
		t.Errorf("Expected deleted employee to vanish from dashboard, got %+v", summary)
	}
	if diff := cmp.Diff([]models.DepartmentCount{{Department: "Engineering", Count: 1}}, summary.Departments); diff != "" {
		t.Errorf("Departments mismatch (-want +got):\n%s", diff)
	}
}
