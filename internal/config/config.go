// Package config loads the optional user configuration file.
//
// The file supplies defaults that the command line can override: the
// colorscheme, whether styling is suppressed, and the browser candidate
// list. A missing file is not an error; callers get DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds user-level defaults for the converter.
type Config struct {
	Colorscheme string   `yaml:"colorscheme"` // Default colorscheme ("" = built-in default)
	NoCSS       bool     `yaml:"noCss"`       // Suppress styling by default
	Browsers    []string `yaml:"browsers"`    // Browser candidates, probed in order
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads configuration from path. An empty path searches the standard
// locations; a missing file there yields DefaultConfig with no error.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := resolvePath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolvePath searches the user config directory for mdtopdf/config.yaml
// then mdtopdf/config.yml.
func resolvePath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(userConfigDir, "mdtopdf", name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", ErrConfigNotFound
}
