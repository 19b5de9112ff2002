// Package health provides health check functionality for the simulator's
// telemetry endpoint. It implements HTTP handlers for liveness and readiness
// probes so a headless instance can be monitored like any other service.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HealthCheck defines the interface for individual health checks.
// Each component can implement this interface to report its status.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health status of the simulator.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth represents the health status of an individual component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker manages and executes health checks.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a new health check. A check with the same name
// replaces the existing one.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a health check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth executes all registered health checks and returns the
// aggregated status. The overall status is "healthy" only if every
// individual check passes.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: "healthy",
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: "healthy",
			}
		}
	}

	return status
}

// LivenessHandler provides a simple liveness probe endpoint. It returns
// 200 OK whenever the process is able to handle requests.
func (hc *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]string{"status": "alive"}
	json.NewEncoder(w).Encode(response)
}

// ReadinessHandler executes all health checks and returns 200 OK when
// the simulator is ready to serve telemetry, or 503 when any check
// fails.
func (hc *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := hc.CheckHealth(ctx)

	w.Header().Set("Content-Type", "application/json")

	if health.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(health)
}

// SimulationHealthCheck reports whether the simulation loop is running
// and its prediction cache is usable.
type SimulationHealthCheck struct {
	predictionValid func() bool
}

// NewSimulationHealthCheck creates a health check for the simulation.
// The callback reports whether the prediction cache is currently valid.
func NewSimulationHealthCheck(predictionValid func() bool) *SimulationHealthCheck {
	return &SimulationHealthCheck{
		predictionValid: predictionValid,
	}
}

// Name returns the name of this health check.
func (s *SimulationHealthCheck) Name() string {
	return "simulation"
}

// Check verifies the prediction cache is valid.
func (s *SimulationHealthCheck) Check(ctx context.Context) error {
	if !s.predictionValid() {
		return fmt.Errorf("prediction cache is invalid")
	}
	return nil
}

// TelemetryHealthCheck reports whether the telemetry listener is active.
type TelemetryHealthCheck struct {
	listenerAddr func() string
}

// NewTelemetryHealthCheck creates a health check for the telemetry
// listener. The callback returns the bound address, or empty when the
// listener is down.
func NewTelemetryHealthCheck(listenerAddr func() string) *TelemetryHealthCheck {
	return &TelemetryHealthCheck{
		listenerAddr: listenerAddr,
	}
}

// Name returns the name of this health check.
func (t *TelemetryHealthCheck) Name() string {
	return "telemetry"
}

// Check verifies that the telemetry listener is active.
func (t *TelemetryHealthCheck) Check(ctx context.Context) error {
	if t.listenerAddr() == "" {
		return fmt.Errorf("telemetry listener is not active")
	}
	return nil
}

// MemoryHealthCheck reports whether memory usage is within limits.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check for memory usage.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within acceptable limits.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}
