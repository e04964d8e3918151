package app

import (
	"errors"
	"fmt"
)

// Graph variants selectable through Config.Variant.
const (
	VariantPlain   = "plain"
	VariantSlotted = "slotted"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath string   // hcl file or directory
	Seeds    []string // kind.name addresses; empty means the plan's sinks
	Variant  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}

	switch cfg.Variant {
	case "":
		cfg.Variant = VariantPlain
	case VariantPlain, VariantSlotted:
	default:
		return nil, fmt.Errorf("invalid variant %q: must be %q or %q", cfg.Variant, VariantPlain, VariantSlotted)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return &cfg, nil
}
