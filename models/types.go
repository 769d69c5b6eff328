package models

import "time"

// Attendance status constants
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Request types

type EmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=50"`
	FullName   string `json:"full_name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,max=254,email"`
	Department string `json:"department" validate:"required,max=100"`
}

// Nil fields keep their stored value
type PatchEmployeeRequest struct {
	EmployeeID *string `json:"employee_id"`
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

type MarkAttendanceRequest struct {
	Employee int64  `json:"employee" validate:"required"`
	Date     string `json:"date" validate:"required,isodate"`
	Status   string `json:"status" validate:"required,oneof=Present Absent"`
}

// Domain types

type Employee struct {
	ID               int64     `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Department       string    `json:"department"`
	CreatedAt        time.Time `json:"created_at"`
	TotalPresentDays int       `json:"total_present_days"` // lifetime count, not stored
}

type Attendance struct {
	ID           int64  `json:"id"`
	Employee     int64  `json:"employee"`
	EmployeeName string `json:"employee_name"`
	Date         Date   `json:"date"`
	Status       string `json:"status"`
}

// Response types

// DailyAttendanceRow is one roster line of the daily register.
// Status is nil when no attendance was recorded for the date.
type DailyAttendanceRow struct {
	EmployeePK   int64   `json:"employee_pk"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Date         Date    `json:"date"`
	Status       *string `json:"status"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type TodaySummary struct {
	Date    Date `json:"date"`
	Present int  `json:"present"`
	Absent  int  `json:"absent"`
}

type DashboardSummary struct {
	TotalEmployees int               `json:"total_employees"`
	Today          TodaySummary      `json:"today"`
	Departments    []DepartmentCount `json:"departments"`
	RecentActivity []Attendance      `json:"recent_activity"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
