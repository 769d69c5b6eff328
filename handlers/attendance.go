// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/attendance-tracker/cliparse"
	"github.com/danielhkuo/attendance-tracker/middleware"
	"github.com/danielhkuo/attendance-tracker/models"
	"github.com/danielhkuo/attendance-tracker/validation"
)

const msgDateFormat = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."

type AttendanceHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAttendanceHandler(db *sql.DB, cfg cliparse.Config) *AttendanceHandler {
	return &AttendanceHandler{db: db, cfg: cfg}
}

// Mark handles POST /attendance/
// Creates or overwrites the status for (employee, date).
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req models.MarkAttendanceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}
	req.Date = strings.TrimSpace(req.Date)

	if fields := validation.Struct(req); fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}
	date, _ := models.ParseDate(req.Date) // checked by isodate

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	record := models.Attendance{
		Employee: req.Employee,
		Date:     date,
		Status:   req.Status,
	}

	err = tx.QueryRowContext(r.Context(), "SELECT full_name FROM employee WHERE id = $1", req.Employee).Scan(&record.EmployeeName)
	if err == sql.ErrNoRows {
		middleware.ValidationErrorResponse(w, map[string]string{
			"employee": fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, req.Employee),
		})
		return
	}
	if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The unique (employee_pk, date) constraint makes this a single atomic write
	err = tx.QueryRowContext(r.Context(), `
		INSERT INTO attendance (employee_pk, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_pk, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id
	`, record.Employee, record.Date, record.Status).Scan(&record.ID)

	if err != nil {
		slog.Error("failed to upsert attendance", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to mark attendance")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to mark attendance")
		return
	}

	slog.Info("attendance marked",
		"attendance_id", record.ID,
		"employee", record.Employee,
		"date", record.Date.String(),
		"status", record.Status,
	)

	middleware.JSONResponse(w, http.StatusOK, record)
}

// Daily handles GET /attendance/daily/?date=YYYY-MM-DD
// Returns every employee; status is null when nothing was recorded.
func (h *AttendanceHandler) Daily(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		middleware.ValidationErrorResponse(w, map[string]string{"date": "This query parameter is required."})
		return
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		middleware.ValidationErrorResponse(w, map[string]string{"date": msgDateFormat})
		return
	}

	rows, err := h.db.QueryContext(r.Context(), `
		SELECT e.id, e.employee_id, e.full_name, e.department, a.status
		FROM employee e
		LEFT JOIN attendance a ON a.employee_pk = e.id AND a.date = $1
		ORDER BY e.employee_id, e.id
	`, date)
	if err != nil {
		slog.Error("failed to query daily attendance", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	register := []models.DailyAttendanceRow{}
	for rows.Next() {
		row := models.DailyAttendanceRow{Date: date}
		var status sql.NullString
		if err := rows.Scan(&row.EmployeePK, &row.EmployeeID, &row.EmployeeName, &row.Department, &status); err != nil {
			slog.Error("failed to scan daily attendance", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if status.Valid {
			row.Status = &status.String
		}
		register = append(register, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate daily attendance", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, register)
}

// History handles GET /attendance/{employee_id}/
// Optional inclusive bounds: ?date_from= and ?date_to=
func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	employeePK, ok := pathID(r, "employee_id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	query := `
		SELECT a.id, a.employee_pk, e.full_name, a.date, a.status
		FROM attendance a
		JOIN employee e ON e.id = a.employee_pk
		WHERE a.employee_pk = $1`
	args := []any{employeePK}

	fields := map[string]string{}
	var from, to models.Date
	for _, bound := range []struct {
		param string
		op    string
		dst   *models.Date
	}{
		{"date_from", ">=", &from},
		{"date_to", "<=", &to},
	} {
		raw := strings.TrimSpace(r.URL.Query().Get(bound.param))
		if raw == "" {
			continue
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			fields[bound.param] = msgDateFormat
			continue
		}
		*bound.dst = d
		args = append(args, d)
		query += fmt.Sprintf(" AND a.date %s $%d", bound.op, len(args))
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from.Time) {
		fields["date_to"] = "Must not be earlier than date_from."
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	var exists int
	err := h.db.QueryRowContext(r.Context(), "SELECT 1 FROM employee WHERE id = $1", employeePK).Scan(&exists)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.QueryContext(r.Context(), query+" ORDER BY a.date DESC, a.id DESC", args...)
	if err != nil {
		slog.Error("failed to query attendance history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records, err := scanAttendanceRows(rows)
	if err != nil {
		slog.Error("failed to scan attendance history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// scanAttendanceRows reads (id, employee_pk, full_name, date, status) rows
func scanAttendanceRows(rows *sql.Rows) ([]models.Attendance, error) {
	records := []models.Attendance{}
	for rows.Next() {
		var rec models.Attendance
		if err := rows.Scan(&rec.ID, &rec.Employee, &rec.EmployeeName, &rec.Date, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
