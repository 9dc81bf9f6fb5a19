package app

import (
	"strings"

	"github.com/pkg/errors"

	"cratemover/internal/report"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Input    string // input path; "" or "-" reads stdin
	LogLevel string // debug, info, warn or error
	Output   string // stack dump format, yaml or json
}

// NewConfig normalises cfg and rejects values the app cannot run with.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, errors.Errorf("invalid log-level %q: must be debug, info, warn or error", cfg.LogLevel)
	}

	cfg.Output = strings.ToLower(cfg.Output)
	switch cfg.Output {
	case "":
		cfg.Output = report.FormatYAML
	case report.FormatYAML, report.FormatJSON:
	default:
		return nil, errors.Errorf("invalid output %q: must be yaml or json", cfg.Output)
	}
	return &cfg, nil
}
