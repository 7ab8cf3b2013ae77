package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Health Handler Test Cases:

1. TestHealthCheck_Healthy   -> 200, database check "up"
2. TestHealthCheck_Unhealthy -> 503 when the database ping fails
*/

type fakePinger struct {
	err error
}

func (f *fakePinger) PingContext(ctx context.Context) error { return f.err }
func (f *fakePinger) Close() error                          { return nil }

func TestHealthCheck_Healthy(t *testing.T) {
	ta := newTestApp(t, true)
	ta.app.db = &fakePinger{}

	rec := ta.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Checks["database"].Status)
}

func TestHealthCheck_Unhealthy(t *testing.T) {
	ta := newTestApp(t, true)
	ta.app.db = &fakePinger{err: errors.New("connection refused")}

	rec := ta.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "down", resp.Checks["database"].Status)
	assert.Contains(t, resp.Checks["database"].Error, "connection refused")
}
