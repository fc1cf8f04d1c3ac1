package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "lexmerge.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/lexmerge"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "LEXMERGE_"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger   *slog.Logger
	fs       afero.Fs
	workDir  string
	homeDir  string
	environ  []string
	envFiles []string
}

// NewLoader creates a loader reading the real filesystem and environment
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()
	return &Loader{
		logger:   logger,
		fs:       afero.NewOsFs(),
		workDir:  workDir,
		homeDir:  homeDir,
		environ:  os.Environ(),
		envFiles: []string{".env", ".env.local"},
	}
}

// WithFs makes the loader search fsys from workDir, with homeDir as the
// user's home. An empty homeDir disables the user config.
func (l *Loader) WithFs(fsys afero.Fs, workDir, homeDir string) *Loader {
	l.fs = fsys
	l.workDir = workDir
	l.homeDir = homeDir
	return l
}

// WithEnviron replaces the process environment seen by the loader
func (l *Loader) WithEnviron(environ []string) *Loader {
	l.environ = environ
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/lexmerge/config.yaml)
// 3. Project config (lexmerge.yaml in current or parent directories)
// 4. .env files in the working directory
// 5. LEXMERGE_* environment variables
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if userConfig, err := l.loadFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		projectConfig, err := l.loadFile(projectConfigPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		config.Merge(projectConfig)
	} else {
		l.logger.Debug("No project config found")
	}

	return l.finish(config)
}

// LoadFile loads the given config file on top of the defaults, then applies
// the environment. No other file is consulted.
func (l *Loader) LoadFile(path string) (*Config, error) {
	config, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	return l.finish(config)
}

func (l *Loader) finish(config *Config) (*Config, error) {
	if err := l.applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) loadFile(path string) (*Config, error) {
	return LoadFromFile(l.fs, path)
}

// applyEnv overrides config from the environment. Variables from .env files
// never replace variables already set in the process environment.
func (l *Loader) applyEnv(config *Config) error {
	environment := make(map[string]string)
	for _, name := range l.envFiles {
		path := filepath.Join(l.workDir, name)
		f, err := l.fs.Open(path)
		if err != nil {
			continue
		}
		values, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		l.logger.Debug("Loaded env file", slog.String("path", path), slog.Int("vars", len(values)))
		for k, v := range values {
			environment[k] = v
		}
	}
	for _, kv := range l.environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environment[k] = v
		}
	}

	if err := env.ParseWithOptions(config, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't
// exist and returns its path. created is false when the file was already there.
func (l *Loader) EnsureUserConfig() (path string, created bool, err error) {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return "", false, errors.New("no home directory")
	}

	if _, err := l.fs.Stat(userConfigPath); err == nil {
		return userConfigPath, false, nil
	}

	if err := DefaultConfig().SaveToFile(l.fs, userConfigPath); err != nil {
		return "", false, err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return userConfigPath, true, nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	if l.homeDir == "" {
		return ""
	}
	return filepath.Join(l.homeDir, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for lexmerge.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	if l.workDir == "" {
		return ""
	}

	dir := l.workDir
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := l.fs.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
