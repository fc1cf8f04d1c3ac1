// Package config provides configuration loading and management for lexmerge.
package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents the complete lexmerge configuration
type Config struct {
	Dump       DumpConfig     `yaml:"dump" envPrefix:"DUMP_"`
	Targets    TargetsConfig  `yaml:"targets" envPrefix:"TARGET_"`
	AED        AEDConfig      `yaml:"aed" envPrefix:"AED_"`
	Validation ValidateConfig `yaml:"validate" envPrefix:"VALIDATE_"`
	Log        LogConfig      `yaml:"log" envPrefix:"LOG_"`
	Metrics    MetricsConfig  `yaml:"metrics" envPrefix:"METRICS_"`
}

// DumpConfig locates the database dump
type DumpConfig struct {
	// Archive is the ZIP file holding one JSON member per vocabulary
	Archive string `yaml:"archive" env:"ARCHIVE"`
	// Lemmata is the vocabulary name of the lemma list
	Lemmata string `yaml:"lemmata" env:"LEMMATA"`
	// Thesaurus is the vocabulary name of the thesaurus
	Thesaurus string `yaml:"thesaurus" env:"THESAURUS"`
}

// TargetsConfig locates the documents merged into
type TargetsConfig struct {
	Dictionary string `yaml:"dictionary" env:"DICTIONARY"`
	Thesaurus  string `yaml:"thesaurus" env:"THESAURUS"`
	// Indent is the number of spaces used by the format command
	Indent int `yaml:"indent" env:"INDENT"`
}

// AEDConfig configures access to the published lemma pages
type AEDConfig struct {
	BaseURL   string        `yaml:"base_url" env:"BASE_URL"`
	Archive   string        `yaml:"archive" env:"ARCHIVE"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
	UserAgent string        `yaml:"user_agent" env:"USER_AGENT"`
}

// ValidateConfig configures the hierarchy validator
type ValidateConfig struct {
	// Mode is include-own or children-only
	Mode string `yaml:"mode" env:"MODE"`
	// Format is csv, json or txt
	Format string `yaml:"format" env:"FORMAT"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// MetricsConfig configures the metrics textfile
type MetricsConfig struct {
	// File receives the run metrics; empty disables the dump
	File string `yaml:"file" env:"FILE"`
}

var (
	validModes   = []string{"include-own", "children-only"}
	validFormats = []string{"csv", "json", "txt"}
	validLevels  = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Dump: DumpConfig{
			Archive:   "dump/vocabulary.zip",
			Lemmata:   "aaew_wlist",
			Thesaurus: "aaew_ths",
		},
		Targets: TargetsConfig{
			Dictionary: "files/dictionary.xml",
			Thesaurus:  "files/thesaurus.xml",
			Indent:     2,
		},
		AED: AEDConfig{
			BaseURL: "https://raw.githubusercontent.com/simondschweitzer/aed/gh-pages/",
			Archive: "dump/gh-pages.zip",
			Timeout: 30 * time.Second,
		},
		Validation: ValidateConfig{
			Mode:   "include-own",
			Format: "txt",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Dump.Archive == "" {
		return fmt.Errorf("dump.archive is required")
	}
	if c.Dump.Lemmata == "" || c.Dump.Thesaurus == "" {
		return fmt.Errorf("dump.lemmata and dump.thesaurus are required")
	}
	if c.Targets.Indent < 0 {
		return fmt.Errorf("targets.indent must not be negative")
	}
	if c.AED.Timeout < 0 {
		return fmt.Errorf("aed.timeout must not be negative")
	}
	if !slices.Contains(validModes, c.Validation.Mode) {
		return fmt.Errorf("validate.mode must be one of %v", validModes)
	}
	if !slices.Contains(validFormats, c.Validation.Format) {
		return fmt.Errorf("validate.format must be one of %v", validFormats)
	}
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v", validLevels)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on fsys
func LoadFromFile(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file on fsys
func (c *Config) SaveToFile(fsys afero.Fs, path string) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.marshal()
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Dump
	mergeString(&c.Dump.Archive, other.Dump.Archive)
	mergeString(&c.Dump.Lemmata, other.Dump.Lemmata)
	mergeString(&c.Dump.Thesaurus, other.Dump.Thesaurus)

	// Targets
	mergeString(&c.Targets.Dictionary, other.Targets.Dictionary)
	mergeString(&c.Targets.Thesaurus, other.Targets.Thesaurus)
	if other.Targets.Indent != 0 {
		c.Targets.Indent = other.Targets.Indent
	}

	// AED
	mergeString(&c.AED.BaseURL, other.AED.BaseURL)
	mergeString(&c.AED.Archive, other.AED.Archive)
	mergeString(&c.AED.UserAgent, other.AED.UserAgent)
	if other.AED.Timeout != 0 {
		c.AED.Timeout = other.AED.Timeout
	}

	mergeString(&c.Validation.Mode, other.Validation.Mode)
	mergeString(&c.Validation.Format, other.Validation.Format)
	mergeString(&c.Log.Level, other.Log.Level)
	mergeString(&c.Metrics.File, other.Metrics.File)
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
