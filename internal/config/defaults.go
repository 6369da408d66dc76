package config

import "strings"

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Encoding: "escaped",
		Order:    "input",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ApplyDefaults fills empty fields with defaults and normalizes the case of
// enumerated values.
func ApplyDefaults(cfg *Config) {
	d := Default()

	cfg.Encoding = normalize(cfg.Encoding, d.Encoding)
	if cfg.Encoding == "utf-8" {
		cfg.Encoding = "utf8"
	}
	cfg.Order = normalize(cfg.Order, d.Order)
	cfg.Logging.Level = normalize(cfg.Logging.Level, d.Logging.Level)
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}
	cfg.Logging.Format = normalize(cfg.Logging.Format, d.Logging.Format)
}

func normalize(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
