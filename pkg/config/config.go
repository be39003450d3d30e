// Package config loads docmd's optional TOML configuration file. The file
// holds persistent defaults; command line flags override it per run, and
// the merged result is resolved into render options once, before the
// traversal starts.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/docmd/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration file contents
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// OutputConfig controls the produced Markdown
type OutputConfig struct {
	// Anchors toggles HTML anchors on section titles
	Anchors bool `toml:"anchors"`
}

// LoggingConfig controls diagnostics
type LoggingConfig struct {
	// Verbosity is the default log verbosity (0 warn, 1 info, 2 debug)
	Verbosity int `toml:"verbosity"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Output: OutputConfig{Anchors: true},
	}
}

// Path returns the default config file location under the XDG config dir
func Path() string {
	return filepath.Join(xdg.ConfigHome, "docmd", "config.toml")
}

// Load reads the config file at path. A missing file is not an error; the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "could not read config file %s", path)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "could not parse config file %s", path)
	}

	return cfg, nil
}
