// cmd/orbit/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/health"
	"github.com/opd-ai/go-orbit/pkg/logging"
	engorender "github.com/opd-ai/go-orbit/pkg/render/engo"
	"github.com/opd-ai/go-orbit/pkg/resource"
	"github.com/opd-ai/go-orbit/pkg/telemetry"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "scene.json", "Path to scene configuration file")
	createDefault := flag.Bool("default", false, "Write the default scene configuration and exit")
	headless := flag.Bool("headless", false, "Run without a window")
	telemetryAddr := flag.String("telemetry", "", "Telemetry listen address (overrides ORBIT_TELEMETRY_ADDR)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "failed to write default scene", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "wrote default scene", "config_path", *configPath)
		return
	}

	var scene *config.SceneConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "scene file not found, using built-in default",
			"config_path", *configPath,
		)
		scene = config.DefaultConfig()
	} else {
		scene, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "failed to load scene", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	envCfg, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "invalid environment configuration", err)
		os.Exit(1)
	}
	if *telemetryAddr != "" {
		envCfg.TelemetryAddr = *telemetryAddr
	}

	bodies, player, err := scene.BuildUniverse()
	if err != nil {
		logger.Error(ctx, "failed to build universe", err)
		os.Exit(1)
	}

	session, err := engine.NewSession(bodies, player,
		engine.WithGravity(scene.Gravity),
		engine.WithHorizon(envCfg.Horizon),
		engine.WithSubsteps(envCfg.Substeps),
		engine.WithTimeWarp(envCfg.TimeWarp),
		engine.WithEventBus(event.NewEventBus()),
	)
	if err != nil {
		logger.Error(ctx, "failed to create session", err)
		os.Exit(1)
	}

	logger.Info(ctx, "session created",
		"bodies", len(session.Bodies),
		"horizon", session.Horizon(),
		"time_warp", session.TimeWarp(),
	)

	if *headless {
		runHeadless(ctx, session, scene, envCfg, logger)
		return
	}

	if envCfg.TelemetryAddr != "" {
		logger.Warn(ctx, "telemetry is only served in headless mode, ignoring address",
			"addr", envCfg.TelemetryAddr,
		)
	}

	engorender.Run(session, scene.Display, logger)
}

// runHeadless drives the session on a wall-clock ticker, serving
// telemetry when an address is configured, until interrupted.
func runHeadless(ctx context.Context, session *engine.Session, scene *config.SceneConfig, envCfg *config.EnvironmentConfig, logger *logging.Logger) {
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	manager := resource.NewManager(envCfg)
	if err := manager.Start(); err != nil {
		logger.Error(ctx, "failed to start resource manager", err)
		os.Exit(1)
	}

	var server *telemetry.Server
	if envCfg.TelemetryAddr != "" {
		server = telemetry.NewServer(envCfg.TelemetryAddr, logger)
		server.AddHealthCheck(health.NewSimulationHealthCheck(
			func() bool { return session.Trajectory.Valid() },
		))
		server.AddHealthCheck(health.NewMemoryHealthCheck(
			manager.MaxMemoryMB(),
			manager.MemoryUsageMB,
		))
		if err := server.Start(runCtx); err != nil {
			logger.Error(ctx, "failed to start telemetry", err,
				"addr", envCfg.TelemetryAddr,
			)
			os.Exit(1)
		}
	}

	stride := scene.Display.TrajectoryStride

	const frame = 16 * time.Millisecond
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-runCtx.Done():
			logger.Info(ctx, "shutting down")
			if err := manager.Shutdown(context.Background()); err != nil {
				logger.Warn(ctx, "unclean shutdown", "error", err.Error())
			}
			return
		case now := <-ticker.C:
			session.Update(now.Sub(last).Seconds())
			last = now

			if server != nil {
				server.Publish(telemetry.BuildSnapshot(session, stride))
				drainCommands(session, server)
			}
		}
	}
}

// drainCommands applies queued telemetry commands between ticks.
func drainCommands(session *engine.Session, server *telemetry.Server) {
	for {
		select {
		case cmd := <-server.Commands():
			if cmd.TimeWarp != nil {
				session.SetTimeWarp(*cmd.TimeWarp)
			}
		default:
			return
		}
	}
}
