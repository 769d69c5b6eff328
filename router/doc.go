// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the attendance tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

Every resource route is registered twice, at its bare path and under
APIPrefix, so /employees/ and /api/employees/ reach the same handler.
Resource paths end in a slash; the mux redirects the slashless form.

# Endpoints

Health:

	GET /health

Employees:

	GET    /employees/      - List (?search=, ?department=)
	POST   /employees/      - Create
	GET    /employees/{id}/ - Get
	PUT    /employees/{id}/ - Replace
	PATCH  /employees/{id}/ - Partial update
	DELETE /employees/{id}/ - Delete with attendance
	GET    /departments/    - Distinct departments

Attendance:

	POST /attendance/               - Mark (create or overwrite)
	GET  /attendance/daily/?date=   - Daily register
	GET  /attendance/{employee_id}/ - Employee history

Dashboard:

	GET /dashboard/ - Summary

# Handler Initialization

The router creates handler instances with dependency injection:

	employeeHandler := handlers.NewEmployeeHandler(db, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
