package config

import (
	"log/slog"
	"strings"
)

// Config is the root application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	JMdict JMdictConfig `yaml:"jmdict"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// JMdictConfig holds parse run settings.
type JMdictConfig struct {
	Path        string `yaml:"path"         env:"JMDICT_PATH"`
	ReportEvery int    `yaml:"report_every" env:"JMDICT_REPORT_EVERY" env-default:"50000"`
	Dump        bool   `yaml:"dump"         env:"JMDICT_DUMP"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps Level to a slog level (case-insensitive). Unknown values
// fall back to info; Validate rejects them on load.
func (c LogConfig) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(strings.TrimSpace(c.Level))]; ok {
		return level
	}
	return slog.LevelInfo
}

// JSON reports whether the JSON handler is selected.
func (c LogConfig) JSON() bool {
	return strings.EqualFold(c.Format, "json")
}
