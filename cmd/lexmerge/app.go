package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/c360studio/lexmerge/config"
	"github.com/c360studio/lexmerge/metrics"
	"github.com/spf13/afero"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	// loadConfig reads the configuration; path is the --config flag.
	loadConfig func(path string, logger *slog.Logger) (*config.Config, error)
	homeDir    func() (string, error)

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	started time.Time
}

func newApp() *app {
	return &app{
		fs:         afero.NewOsFs(),
		out:        os.Stdout,
		errOut:     os.Stderr,
		loadConfig: loadConfig,
		homeDir:    os.UserHomeDir,
	}
}

func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	loader := config.NewLoader(logger)
	if path != "" {
		return loader.LoadFile(path)
	}
	return loader.Load()
}

// setup loads the configuration and configures logging and metrics.
func (a *app) setup(configPath, logLevel, metricsFile string) error {
	bootstrap := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg, err := a.loadConfig(configPath, bootstrap)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("load config: %w", err))
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if metricsFile != "" {
		cfg.Metrics.File = metricsFile
	}

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return withCode(exitUsage, err)
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	a.metrics = metrics.New()
	a.started = time.Now()
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (debug, info, warn, error)", s)
}

// finish records the command duration and writes the metrics textfile.
func (a *app) finish(command string) {
	if a.metrics == nil {
		return
	}
	a.metrics.Since(command, a.started)
	if err := a.metrics.WriteFile(a.cfg.Metrics.File); err != nil {
		a.logger.Warn("Failed to write metrics", slog.String("error", err.Error()))
	}
}
