package config

import (
	"fmt"
	"strings"
)

// Validate performs validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.JMdict.ReportEvery < 0 {
		return fmt.Errorf("jmdict: report_every must be >= 0 (got %d)", c.JMdict.ReportEvery)
	}
	return nil
}

func (l LogConfig) validate() error {
	if _, ok := logLevels[strings.ToLower(strings.TrimSpace(l.Level))]; !ok {
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
