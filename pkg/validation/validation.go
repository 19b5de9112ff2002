// Package validation provides input validation for telemetry control
// messages received from websocket clients.
package validation

import (
	"encoding/json"
	"fmt"
	"time"
)

// Limits applied to inbound control messages.
const (
	MaxMessageSize    = 4 * 1024 // control messages are tiny
	MaxCommandsPerMin = 120
	MaxTimeWarp       = 1000.0
)

// CommandValidator validates raw control messages before they reach
// the simulation loop.
type CommandValidator struct {
	rateLimiter *RateLimiter
}

// NewCommandValidator creates a validator with per-client rate limiting.
func NewCommandValidator() *CommandValidator {
	return &CommandValidator{
		rateLimiter: NewRateLimiter(MaxCommandsPerMin, time.Minute),
	}
}

// Close releases resources used by the validator.
func (v *CommandValidator) Close() {
	if v.rateLimiter != nil {
		v.rateLimiter.Close()
	}
}

// ValidateMessage checks a raw message against size, format, and rate
// constraints.
func (v *CommandValidator) ValidateMessage(data []byte, clientID string) error {
	if len(data) > MaxMessageSize {
		return fmt.Errorf("message too large: %d bytes (max %d)", len(data), MaxMessageSize)
	}

	if !json.Valid(data) {
		return fmt.Errorf("invalid JSON format")
	}

	if !v.rateLimiter.Allow(clientID) {
		return fmt.Errorf("rate limit exceeded: max %d commands per minute", MaxCommandsPerMin)
	}

	return nil
}

// ValidateTimeWarp checks a requested time warp factor. Zero and
// negative factors would stall or reverse the simulation clock.
func ValidateTimeWarp(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("time warp must be positive, got %g", factor)
	}
	if factor > MaxTimeWarp {
		return fmt.Errorf("time warp %g exceeds maximum %g", factor, MaxTimeWarp)
	}
	return nil
}

// ValidateStride checks a trajectory sampling stride.
func ValidateStride(stride int) error {
	if stride < 1 {
		return fmt.Errorf("stride must be at least 1, got %d", stride)
	}
	return nil
}
