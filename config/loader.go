package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// decodeInto parses data into cfg, choosing the format from the file name.
// Keys absent from data leave cfg untouched, which is what layering relies on.
func decodeInto(path string, data []byte, cfg *Config) error {
	expanded := expandEnvVars(string(data))
	if isTOML(path) {
		if err := toml.Unmarshal([]byte(expanded), cfg); err != nil {
			return err
		}
		// toml has no inline maps; collect unknown tables as extensions
		var raw map[string]interface{}
		if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
			return err
		}
		for key, value := range raw {
			if knownSections[key] {
				continue
			}
			if cfg.Extensions == nil {
				cfg.Extensions = make(map[string]interface{})
			}
			cfg.Extensions[key] = value
		}
		return nil
	}
	return yaml.Unmarshal([]byte(expanded), cfg)
}

// decodeRaw parses data into a generic document for schema validation.
func decodeRaw(path string, data []byte) (map[string]interface{}, error) {
	expanded := expandEnvVars(string(data))
	raw := make(map[string]interface{})
	if isTOML(path) {
		if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

var knownSections = map[string]bool{
	"version":  true,
	"terminal": true,
	"menu":     true,
	"dump":     true,
}

// FindConfigFile searches for a partui configuration file from startDir up to
// the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

var configNames = []string{
	"partui.yml",
	"partui.yaml",
	".partui.yml",
	".partui.yaml",
	"partui.toml",
}

// getXDGConfigPath returns the global configuration path, or "" when no
// home directory can be determined.
func getXDGConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "partui", "partui.yml")
}
