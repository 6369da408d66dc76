package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config search at an empty directory so the
// user's own config is never read.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("encoding", "escaped", "")
	fs.String("order", "input", "")
	fs.Int("concurrency", 0, "")
	fs.Duration("file-timeout", 0, "")
	fs.Bool("buffered", false, "")
	fs.String("log-level", "warn", "")
	fs.String("log-format", "text", "")
	return fs
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "escaped", cfg.Encoding)
	assert.Equal(t, "input", cfg.Order)
	assert.Equal(t, 0, cfg.Concurrency)
	assert.Equal(t, time.Duration(0), cfg.FileTimeout)
	assert.False(t, cfg.Buffered)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
encoding: base64
order: completion
concurrency: 4
file_timeout: 2s
buffered: true
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "base64", cfg.Encoding)
	assert.Equal(t, "completion", cfg.Order)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 2*time.Second, cfg.FileTimeout)
	assert.True(t, cfg.Buffered)
	assert.Equal(t, "debug", cfg.Logging.Level, "level is normalized to lowercase")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "getsfattr"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "getsfattr", "config.yaml"), []byte("encoding: utf8\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "utf8", cfg.Encoding)
	assert.Equal(t, filepath.Join(dir, "getsfattr", "config.yaml"), DefaultConfigPath())
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("GETSFATTR_ENCODING", "utf8")
	t.Setenv("GETSFATTR_CONCURRENCY", "3")
	t.Setenv("GETSFATTR_FILE_TIMEOUT", "150ms")
	t.Setenv("GETSFATTR_LOGGING_LEVEL", "info")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "utf8", cfg.Encoding)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, 150*time.Millisecond, cfg.FileTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FlagsOverrideFileAndEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GETSFATTR_ORDER", "completion")
	path := writeConfig(t, "encoding: utf8\nconcurrency: 2\n")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--encoding", "base64", "--order", "input", "--log-level", "error"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "base64", cfg.Encoding)
	assert.Equal(t, "input", cfg.Order)
	assert.Equal(t, 2, cfg.Concurrency, "unset flag does not shadow the file")
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"encoding", "encoding: hex\n", "Encoding"},
		{"order", "order: random\n", "Order"},
		{"negative concurrency", "concurrency: -1\n", "Concurrency"},
		{"log format", "logging:\n  format: xml\n", "Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Encoding: " UTF-8 ", Logging: LoggingConfig{Level: "Warning"}}
	ApplyDefaults(cfg)

	assert.Equal(t, "utf8", cfg.Encoding)
	assert.Equal(t, "input", cfg.Order)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, Validate(cfg))
}

func TestRunOptions(t *testing.T) {
	cfg := Default()
	cfg.Buffered = true
	opts, err := cfg.RunOptions(slog.Default())
	require.NoError(t, err)
	assert.Len(t, opts, 6)

	cfg.Encoding = "bogus"
	_, err = cfg.RunOptions(nil)
	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Encoding = "base64"
	cfg.FileTimeout = 1500 * time.Millisecond

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "encoding: base64")
	assert.Contains(t, string(out), "file_timeout: 1.5s")

	loaded, err := Load(writeConfig(t, string(out)), nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(LoggingConfig{Level: "info", Format: "json"}, &buf)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler expected, got %q", out)
	assert.Contains(t, out, `"k":"v"`)

	buf.Reset()
	logger = NewLogger(LoggingConfig{Level: "warn", Format: "text"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
}
