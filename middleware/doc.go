// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

RequestID reuses an incoming X-Request-ID or assigns a UUID, echoes it in
the response and stores it in the request context:

	handler := middleware.RequestID(mux)
	id := middleware.RequestIDFromContext(r.Context())

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /dashboard/{$}", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). NewLogger builds the text or JSON slog handler
the server installs as the default logger.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.AllowedOrigin),
	}

An empty origin echoes the caller's Origin header. Allows methods GET,
POST, PUT, PATCH, DELETE, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Employee not found")
	middleware.ValidationErrorResponse(w, map[string]string{"email": "Email already exists."})

Parse JSON request bodies:

	var req models.EmployeeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

An empty body decodes like {}. BodyErrorResponse reports a value of the
wrong JSON type under its field name.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged as remote on every request.
*/
package middleware
