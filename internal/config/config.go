// Package config loads taskboard settings from defaults, an optional
// .taskboard.json file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// FileName is the project-local config file
const FileName = ".taskboard.json"

// Environment variable names
const (
	EnvDataDir    = "TASKBOARD_DATA_DIR"
	EnvStorageKey = "TASKBOARD_STORAGE_KEY"
	EnvDebounceMs = "TASKBOARD_DEBOUNCE_MS"
	EnvLogFile    = "TASKBOARD_LOG_FILE"
	EnvLogLevel   = "TASKBOARD_LOG_LEVEL"
)

// Config represents the full taskboard configuration
type Config struct {
	Storage StorageConfig `json:"storage"`
	Filter  FilterConfig  `json:"filter"`
	Log     LogConfig     `json:"log"`
}

// StorageConfig controls where the task list is persisted
type StorageConfig struct {
	Dir string `json:"dir"`
	Key string `json:"key"`
}

// FilterConfig contains filter input settings
type FilterConfig struct {
	DebounceMs int `json:"debounceMs"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// DebounceDelay returns the filter debounce as a duration
func (c FilterConfig) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// SlogLevel maps the configured level name to a slog level.
// Unknown names fall back to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	dataDir := defaultDataDir()

	return &Config{
		Storage: StorageConfig{
			Dir: dataDir,
			Key: "tasks",
		},
		Filter: FilterConfig{
			DebounceMs: 500,
		},
		Log: LogConfig{
			File:  filepath.Join(dataDir, "taskboard.log"),
			Level: "info",
		},
	}
}

// defaultDataDir is ~/.taskboard, or a taskboard dir under the system temp
// dir when no home directory can be resolved
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		dir := filepath.Join(os.TempDir(), "taskboard")
		slog.Warn("home directory unavailable, using temp dir for data", "dir", dir, "error", err)
		return dir
	}
	return filepath.Join(home, ".taskboard")
}

// LoadConfig loads configuration for projectPath with priority:
// 1. Environment (a .env file in projectPath is loaded first if present)
// 2. .taskboard.json in projectPath
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(projectPath, FileName)
	if data, err := os.ReadFile(configPath); err == nil {
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		cfg = MergeWithDefaults(&fileCfg)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	envPath := filepath.Join(projectPath, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from environment variables
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.Storage.Dir = v
	}
	if v, ok := lookup(EnvStorageKey); ok && v != "" {
		cfg.Storage.Key = v
	}
	if v, ok := lookup(EnvDebounceMs); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", EnvDebounceMs, v)
		}
		cfg.Filter.DebounceMs = ms
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaults.Storage.Dir
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = defaults.Storage.Key
	}

	if cfg.Filter.DebounceMs <= 0 {
		cfg.Filter.DebounceMs = defaults.Filter.DebounceMs
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
