// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig carries runtime tuning read from ORBIT_* variables,
// overriding the built-in simulation defaults without touching scene
// files.
type EnvironmentConfig struct {
	Horizon       int     // ORBIT_HORIZON: ticks per full recompute
	Substeps      int     // ORBIT_SUBSTEPS: integration sub-steps per tick
	TimeWarp      float64 // ORBIT_TIME_WARP: simulated-to-real time ratio
	TelemetryAddr string  // ORBIT_TELEMETRY_ADDR: websocket listen address, empty disables

	MaxMemoryMB     int64         // ORBIT_MAX_MEMORY_MB: soft memory ceiling for monitoring
	MaxGoroutines   int           // ORBIT_MAX_GOROUTINES: tracked goroutine ceiling
	ShutdownTimeout time.Duration // ORBIT_SHUTDOWN_TIMEOUT: graceful stop budget
}

// LoadConfigFromEnv reads the ORBIT_* environment variables, applying
// safe defaults for anything unset. Malformed values are errors rather
// than silent fallbacks.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		Horizon:         100000,
		Substeps:        5,
		TimeWarp:        1,
		TelemetryAddr:   os.Getenv("ORBIT_TELEMETRY_ADDR"),
		MaxMemoryMB:     512,
		MaxGoroutines:   100,
		ShutdownTimeout: 10 * time.Second,
	}

	if v := os.Getenv("ORBIT_HORIZON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ORBIT_HORIZON must be a positive integer, got %q", v)
		}
		cfg.Horizon = n
	}

	if v := os.Getenv("ORBIT_SUBSTEPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ORBIT_SUBSTEPS must be a positive integer, got %q", v)
		}
		cfg.Substeps = n
	}

	if v := os.Getenv("ORBIT_TIME_WARP"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("ORBIT_TIME_WARP must be a positive number, got %q", v)
		}
		cfg.TimeWarp = f
	}

	if v := os.Getenv("ORBIT_MAX_MEMORY_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ORBIT_MAX_MEMORY_MB must be a positive integer, got %q", v)
		}
		cfg.MaxMemoryMB = n
	}

	if v := os.Getenv("ORBIT_MAX_GOROUTINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ORBIT_MAX_GOROUTINES must be a positive integer, got %q", v)
		}
		cfg.MaxGoroutines = n
	}

	if v := os.Getenv("ORBIT_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("ORBIT_SHUTDOWN_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
