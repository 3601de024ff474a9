// Package paths resolves configuration and data directory locations.
//
// Both directories default to the current working directory so that a bare
// `parlor` run keeps ice_cream_parlor.db next to where it was started.
package paths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDirName is the CWD-relative configuration directory.
const DefaultConfigDirName = ".parlor"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PARLOR_CONFIG_DIR"
	EnvDataDir   = "PARLOR_DATA_DIR"
)

// getwd can be overridden in tests.
var getwd = os.Getwd

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PARLOR_CONFIG_DIR env > $(CWD)/.parlor.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > PARLOR_DATA_DIR env > $(CWD).
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return getwd()
}
