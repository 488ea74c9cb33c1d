package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// environment variable naming a config file when --config is not given
const EnvConfigPath = "MINUTEBOOK_CONFIG"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config file")
)

// settings that may be provided by a YAML file instead of flags
type Config struct {
	// Output is a file path receiving the printed stream; empty means stdout.
	Output    string `yaml:"output"`
	Clipboard bool   `yaml:"clipboard"`
	Verbose   bool   `yaml:"verbose"`

	path string
}

func defaultConfig() *Config {
	return &Config{}
}

// Load reads the config at path, falling back to $MINUTEBOOK_CONFIG. With
// neither set the defaults are returned. A named file that does not exist is
// an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigParse, path, err)
	}
	cfg.path = path

	cfg.normalize()
	return cfg, nil
}

// path the config was loaded from, empty for defaults
func (c *Config) Path() string {
	return c.path
}

func (c *Config) normalize() {
	c.Output = strings.TrimSpace(c.Output)
	if c.Output != "" {
		c.Output = filepath.Clean(c.Output)
	}
}
