package main

import (
	"context"
	"net/http"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                 `json:"status"` // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
	Uptime    string                 `json:"uptime,omitempty"`
}

// CheckResult represents the result of a dependency health check
type CheckResult struct {
	Status       string `json:"status"` // "up" or "down"
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

var startTime = time.Now()

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckResult)
	overallStatus := "healthy"

	dbCheck := app.checkDatabase(ctx)
	checks["database"] = dbCheck
	if dbCheck.Status != "up" {
		overallStatus = "unhealthy"
	}

	response := HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Uptime:    time.Since(startTime).String(),
	}

	statusCode := http.StatusOK
	if overallStatus == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, response)
}

func (app *application) checkDatabase(ctx context.Context) CheckResult {
	start := time.Now()

	if app.db == nil {
		return CheckResult{
			Status: "down",
			Error:  "database connection not initialized",
		}
	}

	if err := app.db.PingContext(ctx); err != nil {
		return CheckResult{
			Status:       "down",
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}

	return CheckResult{
		Status:       "up",
		ResponseTime: time.Since(start).String(),
	}
}
