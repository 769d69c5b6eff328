// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/attendance-tracker/cliparse"
	"github.com/danielhkuo/attendance-tracker/db"
	"github.com/danielhkuo/attendance-tracker/middleware"
	"github.com/danielhkuo/attendance-tracker/models"
	"github.com/danielhkuo/attendance-tracker/validation"
)

const (
	msgEmailTaken      = "Email already exists."
	msgEmployeeIDTaken = "Employee ID already exists."
)

// Present-day count is joined in, not stored. Callers append WHERE and
// then employeeGroupBy.
const employeeSelect = `
	SELECT e.id, e.employee_id, e.full_name, e.email, e.department, e.created_at,
	       COUNT(a.id) AS total_present_days
	FROM employee e
	LEFT JOIN attendance a ON a.employee_pk = e.id AND a.status = 'Present'
`

const employeeGroupBy = `
	GROUP BY e.id, e.employee_id, e.full_name, e.email, e.department, e.created_at
`

type EmployeeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewEmployeeHandler(db *sql.DB, cfg cliparse.Config) *EmployeeHandler {
	return &EmployeeHandler{db: db, cfg: cfg, now: time.Now}
}

// List handles GET /employees/
// Optional filters: ?search= (name, employee_id, email) and ?department=
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		conds []string
		args  []any
	)

	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		args = append(args, "%"+escapeLike(strings.ToLower(search))+"%")
		args = append(args, "%"+escapeLike(db.EmployeeIDKey(search))+"%")
		lower, key := fmt.Sprintf("$%d", len(args)-1), fmt.Sprintf("$%d", len(args))
		conds = append(conds, fmt.Sprintf(
			`(LOWER(e.full_name) LIKE %[1]s ESCAPE '\' OR e.employee_id_key LIKE %[2]s ESCAPE '\' OR e.email LIKE %[1]s ESCAPE '\')`, lower, key))
	}
	if dept := strings.TrimSpace(r.URL.Query().Get("department")); dept != "" {
		args = append(args, dept)
		conds = append(conds, fmt.Sprintf("e.department = $%d", len(args)))
	}

	query := employeeSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += employeeGroupBy + " ORDER BY e.created_at DESC, e.id DESC"

	rows, err := h.db.QueryContext(r.Context(), query, args...)
	if err != nil {
		slog.Error("failed to query employees", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			slog.Error("failed to scan employee", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate employees", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, employees)
}

// Create handles POST /employees/
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}
	normalizeEmployee(&req)

	if fields := validation.Struct(req); fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	fields, err := h.checkUnique(r.Context(), req, 0)
	if err != nil {
		slog.Error("failed to check employee uniqueness", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	emp := models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  h.now().UTC(),
	}

	err = h.db.QueryRowContext(r.Context(), `
		INSERT INTO employee (employee_id, employee_id_key, full_name, email, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, emp.EmployeeID, db.EmployeeIDKey(emp.EmployeeID), emp.FullName, emp.Email, emp.Department, emp.CreatedAt).Scan(&emp.ID)

	if constraint, ok := db.UniqueViolation(err); ok {
		// Lost a race with a concurrent insert
		middleware.ValidationErrorResponse(w, uniqueFields(constraint))
		return
	}
	if err != nil {
		slog.Error("failed to insert employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	slog.Info("employee created", "id", emp.ID, "employee_id", emp.EmployeeID)

	middleware.JSONResponse(w, http.StatusCreated, emp)
}

// Get handles GET /employees/{id}/
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	emp, err := h.fetch(r.Context(), id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, emp)
}

// Update handles PUT /employees/{id}/ (full replace)
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	if _, err := h.fetch(r.Context(), id); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	} else if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.EmployeeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	h.save(w, r, id, req)
}

// Patch handles PATCH /employees/{id}/
// Omitted fields keep their stored values.
func (h *EmployeeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	current, err := h.fetch(r.Context(), id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		slog.Error("failed to query employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var patch models.PatchEmployeeRequest
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	req := models.EmployeeRequest{
		EmployeeID: current.EmployeeID,
		FullName:   current.FullName,
		Email:      current.Email,
		Department: current.Department,
	}
	if patch.EmployeeID != nil {
		req.EmployeeID = *patch.EmployeeID
	}
	if patch.FullName != nil {
		req.FullName = *patch.FullName
	}
	if patch.Email != nil {
		req.Email = *patch.Email
	}
	if patch.Department != nil {
		req.Department = *patch.Department
	}

	h.save(w, r, id, req)
}

// save validates req and writes it over employee id
func (h *EmployeeHandler) save(w http.ResponseWriter, r *http.Request, id int64, req models.EmployeeRequest) {
	normalizeEmployee(&req)

	if fields := validation.Struct(req); fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	fields, err := h.checkUnique(r.Context(), req, id)
	if err != nil {
		slog.Error("failed to check employee uniqueness", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	result, err := h.db.ExecContext(r.Context(), `
		UPDATE employee
		SET employee_id = $1, employee_id_key = $2, full_name = $3, email = $4, department = $5
		WHERE id = $6
	`, req.EmployeeID, db.EmployeeIDKey(req.EmployeeID), req.FullName, req.Email, req.Department, id)

	if constraint, ok := db.UniqueViolation(err); ok {
		middleware.ValidationErrorResponse(w, uniqueFields(constraint))
		return
	}
	if err != nil {
		slog.Error("failed to update employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}
	if n, _ := result.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	emp, err := h.fetch(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("employee updated", "id", id, "employee_id", emp.EmployeeID)

	middleware.JSONResponse(w, http.StatusOK, emp)
}

// Delete handles DELETE /employees/{id}/
// Attendance rows go with it (ON DELETE CASCADE).
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	result, err := h.db.ExecContext(r.Context(), "DELETE FROM employee WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete employee", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	n, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	slog.Info("employee deleted", "id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Departments handles GET /departments/
func (h *EmployeeHandler) Departments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT DISTINCT department
		FROM employee
		ORDER BY department
	`)
	if err != nil {
		slog.Error("failed to query departments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	departments := []string{}
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			slog.Error("failed to scan department", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate departments", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, departments)
}

func (h *EmployeeHandler) fetch(ctx context.Context, id int64) (models.Employee, error) {
	row := h.db.QueryRowContext(ctx, employeeSelect+" WHERE e.id = $1"+employeeGroupBy, id)
	return scanEmployee(row)
}

// checkUnique reports case-insensitive email and employee_id collisions
// with any employee other than excludeID.
func (h *EmployeeHandler) checkUnique(ctx context.Context, req models.EmployeeRequest, excludeID int64) (map[string]string, error) {
	var emailTaken, codeTaken int
	err := h.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN email = $1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN employee_id_key = $2 THEN 1 ELSE 0 END), 0)
		FROM employee
		WHERE id <> $3
	`, req.Email, db.EmployeeIDKey(req.EmployeeID), excludeID).Scan(&emailTaken, &codeTaken)
	if err != nil {
		return nil, err
	}

	var fields map[string]string
	if emailTaken > 0 || codeTaken > 0 {
		fields = map[string]string{}
	}
	if emailTaken > 0 {
		fields["email"] = msgEmailTaken
	}
	if codeTaken > 0 {
		fields["employee_id"] = msgEmployeeIDTaken
	}
	return fields, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var emp models.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email,
		&emp.Department, &emp.CreatedAt, &emp.TotalPresentDays,
	)
	return emp, err
}

// normalizeEmployee trims input and lowercases the email
func normalizeEmployee(req *models.EmployeeRequest) {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Department = strings.TrimSpace(req.Department)
}

// uniqueFields maps a violated unique index to the offending field
func uniqueFields(constraint string) map[string]string {
	if strings.Contains(constraint, "email") {
		return map[string]string{"email": msgEmailTaken}
	}
	return map[string]string{"employee_id": msgEmployeeIDTaken}
}

// pathID parses a positive integer path value
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
