package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "HLBAR_CONFIG"

var localNames = []string{"hlbar.toml", "hlbar.yaml", "hlbar.yml"}

// Discover finds the config file path.
// Priority: flag > HLBAR_CONFIG env var > hlbar.{toml,yaml,yml} in CWD >
// walk up parents > $XDG_CONFIG_HOME/hlbar/config.toml.
// An explicit path that does not exist is an error; finding nothing returns
// an empty path.
func Discover(flagPath string) (string, error) {
	for _, explicit := range []struct{ src, path string }{
		{"--config", flagPath},
		{EnvConfig, os.Getenv(EnvConfig)},
	} {
		if explicit.path == "" {
			continue
		}
		if _, err := os.Stat(explicit.path); err != nil {
			return "", fmt.Errorf("%s=%q: %w", explicit.src, explicit.path, os.ErrNotExist)
		}
		return explicit.path, nil
	}

	// Walk up from the working directory, which is checked first.
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		for _, name := range localNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home, _ := os.UserHomeDir()
	for _, name := range []string{"config.toml", "config.yaml"} {
		candidate := filepath.Join(xdgConfigHome(home), "hlbar", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
