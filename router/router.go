// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/danielhkuo/attendance-tracker/cliparse"
	"github.com/danielhkuo/attendance-tracker/handlers"
	"github.com/danielhkuo/attendance-tracker/middleware"
)

// APIPrefix is the alternate mount point used by the web frontend
const APIPrefix = "/api"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(db, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	handle := func(pattern string, h http.HandlerFunc) {
		method, path, _ := strings.Cut(pattern, " ")
		logged := middleware.WithLogging(h)
		mux.HandleFunc(pattern, logged)
		mux.HandleFunc(method+" "+APIPrefix+path, logged)
	}

	// Employees
	handle("GET /employees/{$}", employeeHandler.List)
	handle("POST /employees/{$}", employeeHandler.Create)
	handle("GET /employees/{id}/{$}", employeeHandler.Get)
	handle("PUT /employees/{id}/{$}", employeeHandler.Update)
	handle("PATCH /employees/{id}/{$}", employeeHandler.Patch)
	handle("DELETE /employees/{id}/{$}", employeeHandler.Delete)
	handle("GET /departments/{$}", employeeHandler.Departments)

	// Attendance
	handle("POST /attendance/{$}", attendanceHandler.Mark)
	handle("GET /attendance/daily/{$}", attendanceHandler.Daily)
	handle("GET /attendance/{employee_id}/{$}", attendanceHandler.History)

	// Dashboard
	handle("GET /dashboard/{$}", dashboardHandler.Summary)

	// Root endpoint
	banner := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("attendance-tracker API v1"))
	}
	mux.HandleFunc("GET /{$}", banner)
	mux.HandleFunc("GET "+APIPrefix+"/{$}", banner)

	return mux
}
