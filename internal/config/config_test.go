package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// unsetForTest clears variables a .env file may set and restores them after
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, filepath.IsAbs(cfg.Storage.Dir))
	assert.Equal(t, "tasks", cfg.Storage.Key)
	assert.Equal(t, 500, cfg.Filter.DebounceMs)
	assert.Equal(t, 500*time.Millisecond, cfg.Filter.DebounceDelay())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "taskboard.log", filepath.Base(cfg.Log.File))
}

func TestLoadConfig_NoFiles(t *testing.T) {
	unsetForTest(t, EnvDataDir, EnvStorageKey, EnvDebounceMs, EnvLogFile, EnvLogLevel)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FromFile(t *testing.T) {
	unsetForTest(t, EnvDataDir, EnvStorageKey, EnvDebounceMs, EnvLogFile, EnvLogLevel)
	tmpDir := t.TempDir()

	content := `{
  "storage": {"key": "work"},
  "filter": {"debounceMs": 250}
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(content), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.Storage.Key)
	assert.Equal(t, 250, cfg.Filter.DebounceMs)
	// Unset fields fall back to defaults
	assert.Equal(t, DefaultConfig().Storage.Dir, cfg.Storage.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("{not json"), 0644))

	_, err := LoadConfig(tmpDir)
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	unsetForTest(t, EnvDataDir, EnvStorageKey, EnvDebounceMs, EnvLogFile, EnvLogLevel)
	tmpDir := t.TempDir()

	env := "TASKBOARD_STORAGE_KEY=personal\nTASKBOARD_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(env), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "personal", cfg.Storage.Key)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyEnv(cfg, envMap(map[string]string{
		EnvDataDir:    "/tmp/tb",
		EnvStorageKey: "k",
		EnvDebounceMs: "100",
		EnvLogFile:    "/tmp/tb.log",
		EnvLogLevel:   "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tb", cfg.Storage.Dir)
	assert.Equal(t, "k", cfg.Storage.Key)
	assert.Equal(t, 100, cfg.Filter.DebounceMs)
	assert.Equal(t, "/tmp/tb.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnv_NoneSet(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, noEnv))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnv_InvalidDebounce(t *testing.T) {
	for _, v := range []string{"abc", "0", "-5"} {
		cfg := DefaultConfig()
		err := ApplyEnv(cfg, envMap(map[string]string{EnvDebounceMs: v}))
		assert.Error(t, err, "value %q", v)
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := MergeWithDefaults(&Config{
		Storage: StorageConfig{Dir: "/data"},
		Filter:  FilterConfig{DebounceMs: -1},
	})

	assert.Equal(t, "/data", cfg.Storage.Dir)
	assert.Equal(t, "tasks", cfg.Storage.Key)
	assert.Equal(t, 500, cfg.Filter.DebounceMs)
	assert.NotEmpty(t, cfg.Log.File)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogConfig{Level: tt.level}.SlogLevel())
		})
	}
}

func TestDefaultConfig_HomeDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not read from $HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, ".taskboard"), cfg.Storage.Dir)
	assert.Equal(t, filepath.Join(home, ".taskboard", "taskboard.log"), cfg.Log.File)
}

func TestDefaultConfig_NoHomeDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not read from $HOME")
	}
	t.Setenv("HOME", "")

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(os.TempDir(), "taskboard"), cfg.Storage.Dir)
	assert.True(t, filepath.IsAbs(cfg.Storage.Dir))
	assert.Equal(t, "taskboard.log", filepath.Base(cfg.Log.File))
}
