// Package config loads getsfattr settings from defaults, an optional YAML
// file, GETSFATTR_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/partiallyordered/getsfattr"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GETSFATTR"

// Config holds the complete getsfattr configuration.
//
// Configuration sources (in order of precedence):
//  1. Command-line flags (highest priority)
//  2. Environment variables (GETSFATTR_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Encoding renders attribute values: escaped, base64 or utf8
	Encoding string `mapstructure:"encoding" yaml:"encoding" validate:"required,oneof=escaped base64 utf8"`

	// Order of the emitted array: input or completion
	Order string `mapstructure:"order" yaml:"order" validate:"required,oneof=input completion"`

	// Concurrency is the worker pool size (0 = number of CPUs)
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency" validate:"gte=0,lte=4096"`

	// FileTimeout bounds the collection of a single file (0 = no limit)
	FileTimeout time.Duration `mapstructure:"file_timeout" yaml:"file_timeout" validate:"gte=0"`

	// Buffered holds all output until every file succeeded
	Buffered bool `mapstructure:"buffered" yaml:"buffered"`

	// Logging controls diagnostic output on stderr
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum level logged: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`

	// Format is the handler used: text or json
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"encoding":     "encoding",
	"order":        "order",
	"concurrency":  "concurrency",
	"file-timeout": "file_timeout",
	"buffered":     "buffered",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// Load loads and validates the configuration.
//
// configPath selects an explicit YAML file; when empty the default location
// is searched and a missing file is not an error. flags may be nil; flags
// that are not registered in it are skipped.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	setupViper(v, configPath)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	cfg, err := decode(v.AllSettings())
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("order", d.Order)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("file_timeout", d.FileTimeout)
	v.SetDefault("buffered", d.Buffered)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// setupViper configures environment variables and config file search.
func setupViper(v *viper.Viper, configPath string) {
	// Example: GETSFATTR_LOGGING_LEVEL=debug
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper, configPath string) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configPath == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag '--%s': %w", name, err)
		}
	}
	return nil
}

func decode(settings map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// getConfigDir returns $XDG_CONFIG_HOME/getsfattr, ~/.config/getsfattr, or
// the current directory if no home directory is known.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "getsfattr")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "getsfattr")
}

// DefaultConfigPath returns the path searched when no file is given.
func DefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// RunOptions converts the configuration into options for getsfattr.Run.
func (c *Config) RunOptions(logger *slog.Logger) ([]getsfattr.Option, error) {
	enc, err := getsfattr.ParseEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}
	order, err := getsfattr.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}

	opts := []getsfattr.Option{
		getsfattr.WithEncoding(enc),
		getsfattr.WithOrder(order),
		getsfattr.WithConcurrency(c.Concurrency),
		getsfattr.WithFileTimeout(c.FileTimeout),
		getsfattr.WithLogger(logger),
	}
	if c.Buffered {
		opts = append(opts, getsfattr.WithBufferedOutput())
	}
	return opts, nil
}
