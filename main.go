package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"markestedt/keyglyph/config"
	"markestedt/keyglyph/systray"
)

func main() {
	// Setup logging
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if l, err := cfg.Log.SlogLevel(); err == nil {
		level.Set(l)
	}

	configPath, _ := config.ConfigPath()
	slog.Info("Configuration loaded", "path", configPath)

	// Create agent
	agent, err := NewAgent(cfg)
	if err != nil {
		slog.Error("Failed to create agent", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if !cfg.Tray.Enabled {
		var runErr error
		runHeadless(func() {
			runErr = agent.Run(ctx, nil)
		})
		if runErr != nil {
			slog.Error("Agent error", "error", runErr)
			os.Exit(1)
		}
		slog.Info("KeyGlyph stopped")
		return
	}

	// The tray owns the main goroutine; the agent runs beside it
	tray := systray.NewSystrayManager(cfg.Web.URL(), nil, agent.TogglePause)
	errCh := make(chan error, 1)
	go func() {
		errCh <- agent.Run(ctx, tray.WaitForQuit())
		tray.Stop()
	}()

	tray.Run()
	cancel()

	if err := <-errCh; err != nil {
		slog.Error("Agent error", "error", err)
		os.Exit(1)
	}

	slog.Info("KeyGlyph stopped")
}
