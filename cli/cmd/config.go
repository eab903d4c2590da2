package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds CLI defaults loaded from a roup.toml file; flags override
// whatever it sets.
type Config struct {
	Output struct {
		Format string `toml:"format"` // pragma, yaml, repr
	} `toml:"output"`

	Display struct {
		ColorOutput bool `toml:"color_output"`
	} `toml:"display"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Format = "pragma"
	cfg.Display.ColorOutput = true
	return cfg
}

// LoadConfig reads the config at path, or ~/.roup.toml when path is
// empty. A missing ~/.roup.toml is not an error and the defaults apply;
// a missing file at an explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".roup.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, errors.Wrapf(err, "cannot read config %s", path)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %s", path)
	}
	return cfg, nil
}

func errBadFlag(name, value string) error {
	return fmt.Errorf("invalid --%s value %q", name, value)
}
