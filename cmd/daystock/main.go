// DayStock tracks consumable household inventory: how many days each item
// lasts at its daily consumption rate, with automatic stock decay across
// the days the app was not running.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daystock/daystock/internal/config"
	"github.com/daystock/daystock/internal/services/inventory"
	"github.com/daystock/daystock/internal/storage"
	"github.com/daystock/daystock/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("DayStock version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	if err := run(*configPath, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, debugMode bool) error {
	cfg, cfgPath, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := setupLogging(cfg, debugMode); err != nil {
		return err
	}

	slog.Info("DayStock starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	storagePath, err := config.StoragePath(cfg)
	if err != nil {
		return fmt.Errorf("resolving storage path: %w", err)
	}

	records, err := storage.Open(storagePath)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer records.Close()

	svc := inventory.New(records, time.Duration(cfg.Sort.DebounceMS)*time.Millisecond, nil)

	app := tui.New(svc, cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	slog.Info("DayStock shutting down")
	return nil
}

func setupLogging(cfg *config.Config, debugMode bool) error {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	// The TUI owns the terminal, so logs always go to a file; with no file
	// configured, logging is effectively disabled.
	var handler slog.Handler
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		handler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
