package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/grovetools/partui/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultColumns is the width the widgets are designed for.
	DefaultColumns = 80
	// DefaultMinLines is the smallest terminal a session accepts.
	DefaultMinLines = 24
	// DefaultMenuSpacing separates two menu items.
	DefaultMenuSpacing = 2
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads and parses a partui configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg := &Config{}
	if err := loadLayer(path, data, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadDefault finds and loads the configuration with layering:
// 1. Global config ($XDG_CONFIG_HOME/partui/partui.yml) - base layer
// 2. Project config (partui.yml, found walking up from cwd) - overrides global
// PARTUI_CONFIG names a file that replaces the search.
// A missing configuration is not an error; defaults apply.
func LoadDefault() (*Config, error) {
	if path := os.Getenv("PARTUI_CONFIG"); path != "" {
		return Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with layering starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger loads configuration with layering and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	cfg := &Config{}

	if globalPath := getXDGConfigPath(); globalPath != "" {
		if data, err := os.ReadFile(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			if err := loadLayer(globalPath, data, cfg); err != nil {
				logger.WithError(err).Warn("Failed to parse global configuration, continuing without it")
				cfg = &Config{}
			}
		}
	}

	projectPath, err := FindConfigFile(startDir)
	if err == nil {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		data, err := os.ReadFile(projectPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read project config").
				WithDetail("path", projectPath)
		}
		if err := loadLayer(projectPath, data, cfg); err != nil {
			return nil, err
		}
	} else {
		logger.Debug("No project configuration found, using defaults")
	}

	return finish(cfg)
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := loadLayer("partui.yml", data, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// loadLayer validates one document against the schema and decodes it over cfg.
func loadLayer(path string, data []byte, cfg *Config) error {
	raw, err := decodeRaw(path, data)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration").
			WithDetail("path", path)
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed").
			WithDetail("path", path)
	}

	if err := decodeInto(path, data, cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration").
			WithDetail("path", path)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "semantic validation failed")
	}
	return cfg, nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} references.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
