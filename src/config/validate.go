package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks structural invariants of a loaded Config.
// All problems are reported together.
func Validate(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Tool.Binary) == "" {
		errs = append(errs, "tool.binary: must not be empty")
	}

	switch m := cfg.Tool.Manifest; {
	case strings.TrimSpace(m) == "":
		errs = append(errs, "tool.manifest: must not be empty")
	case strings.ContainsAny(m, `/\`):
		errs = append(errs, fmt.Sprintf("tool.manifest: %q must be a file name, not a path", m))
	}

	if strings.TrimSpace(cfg.Audit.Helper) == "" {
		errs = append(errs, "audit.helper: must not be empty")
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Sprintf("output.color: unknown mode %q (valid: auto, always, never)", cfg.Output.Color))
	}

	if len(errs) > 0 {
		return errors.New("invalid config:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
