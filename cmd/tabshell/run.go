package main

import (
	"context"
	"fmt"
	"time"

	"tabshell/internal/config"
	"tabshell/internal/logging"
	"tabshell/internal/nav"
	"tabshell/internal/router"
	"tabshell/internal/telemetry"
	"tabshell/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.route != "" {
		cfg.StartRoute = opts.route
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildShell wires the router and shell for the start route.
func buildShell(cfg config.Config, logger *zap.Logger, tp *telemetry.Provider, zones *zone.Manager) (*ui.Shell, error) {
	start, err := cfg.Route()
	if err != nil {
		return nil, fmt.Errorf("start route: %w", err)
	}
	r, err := router.New(start, ui.Pages(),
		router.WithLogger(logger),
		router.WithTracer(tp.Tracer("tabshell/router")),
	)
	if err != nil {
		return nil, err
	}
	opts := []ui.ShellOption{ui.WithShellLogger(logger)}
	if zones != nil {
		opts = append(opts, ui.WithZones(zones))
	}
	return ui.NewShell(r, opts...), nil
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	var zones *zone.Manager
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		zones = zone.New()
		defer zones.Close()
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	shell, err := buildShell(cfg, logger, tp, zones)
	if err != nil {
		return err
	}
	defer shell.Close()

	active := shell.Active()
	logger.Info("tabshell starting",
		zap.String("route", nav.RouteForTab(active).Path()),
		zap.Stringer("tab", active),
		zap.Bool("mouse", cfg.Mouse),
		zap.Bool("telemetry", tp.Enabled()))

	if _, err := tea.NewProgram(shell.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
