package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".cratehand.yml"

// Config is the top-level cratehand configuration.
type Config struct {
	Tool   ToolConfig   `yaml:"tool"`
	Audit  AuditConfig  `yaml:"audit"`
	Output OutputConfig `yaml:"output"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the default file doesn't exist; an explicitly
// named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Tool:   DefaultToolConfig(),
		Audit:  DefaultAuditConfig(),
		Output: DefaultOutputConfig(),
	}
}
