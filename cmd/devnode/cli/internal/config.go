package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devnode/devnode/cmd/devnode/cli/option"
)

const configFileName = ".devnode.yaml"

// LoadConfig loads CLI defaults from a YAML configuration file. An empty
// path searches the working directory and then the home directory; a missing
// file yields the defaults.
func LoadConfig(path string) (option.App, error) {
	opts := option.DefaultApp()

	resolved := path
	if resolved == "" {
		resolved = resolveConfigPath()
		if resolved == "" {
			return opts, nil
		}
	}

	// #nosec G304 -- the config path is chosen by the user via CLI flag
	data, err := os.ReadFile(resolved)
	if err != nil {
		return opts, fmt.Errorf("failed to read config %s: %w", resolved, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config %s: %w", resolved, err)
	}
	return opts, nil
}

func resolveConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, configFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
