// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/attendance-tracker/cliparse"
	"github.com/danielhkuo/attendance-tracker/middleware"
	"github.com/danielhkuo/attendance-tracker/models"
)

// recentActivityLimit is the number of attendance records shown on the dashboard
const recentActivityLimit = 5

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg, now: time.Now}
}

// today returns the current calendar date in the configured time zone
func (h *DashboardHandler) today() models.Date {
	now := h.now()
	if h.cfg.Location != nil {
		now = now.In(h.cfg.Location)
	}
	return models.DateOf(now)
}

// Summary handles GET /dashboard/
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summarize(r.Context(), h.today())
	if err != nil {
		slog.Error("failed to build dashboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

func (h *DashboardHandler) summarize(ctx context.Context, today models.Date) (models.DashboardSummary, error) {
	summary := models.DashboardSummary{
		Today:          models.TodaySummary{Date: today},
		Departments:    []models.DepartmentCount{},
		RecentActivity: []models.Attendance{},
	}

	if err := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employee").Scan(&summary.TotalEmployees); err != nil {
		return summary, err
	}

	err := h.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Present' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'Absent' THEN 1 ELSE 0 END), 0)
		FROM attendance
		WHERE date = $1
	`, today).Scan(&summary.Today.Present, &summary.Today.Absent)
	if err != nil {
		return summary, err
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT department, COUNT(*)
		FROM employee
		GROUP BY department
		ORDER BY department
	`)
	if err != nil {
		return summary, err
	}
	defer rows.Close()

	for rows.Next() {
		var dc models.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return summary, err
		}
		summary.Departments = append(summary.Departments, dc)
	}
	if err := rows.Err(); err != nil {
		return summary, err
	}

	recent, err := h.db.QueryContext(ctx, `
		SELECT a.id, a.employee_pk, e.full_name, a.date, a.status
		FROM attendance a
		JOIN employee e ON e.id = a.employee_pk
		ORDER BY a.date DESC, a.id DESC
		LIMIT $1
	`, recentActivityLimit)
	if err != nil {
		return summary, err
	}
	defer recent.Close()

	summary.RecentActivity, err = scanAttendanceRows(recent)
	return summary, err
}
