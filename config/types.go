package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the partui configuration document (partui.yml / partui.toml).
type Config struct {
	Version  string         `yaml:"version" toml:"version"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
	Menu     MenuConfig     `yaml:"menu" toml:"menu"`
	Dump     DumpConfig     `yaml:"dump" toml:"dump"`

	// Extensions holds every top-level key partui does not know about.
	// Other components (logging) decode their own section from it.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// TerminalConfig describes the screen the widgets are laid out for.
type TerminalConfig struct {
	// Columns is the line budget menus and wrapped text are designed for.
	Columns int `yaml:"columns" toml:"columns" jsonschema:"minimum=40,description=Number of columns the widgets are designed for"`
	// MinLines is the smallest terminal height a session accepts.
	MinLines int `yaml:"min_lines" toml:"min_lines" jsonschema:"minimum=8,description=Minimum terminal height"`
	// AltScreen switches to the alternate screen for the session.
	AltScreen *bool `yaml:"alt_screen,omitempty" toml:"alt_screen,omitempty" jsonschema:"description=Use the alternate screen buffer"`
}

// MenuConfig tunes the menu navigator.
type MenuConfig struct {
	// Spacing is the number of blank columns between two menu items.
	Spacing int `yaml:"spacing" toml:"spacing" jsonschema:"minimum=0,description=Blank columns between menu items"`
	// DebugBell prints rejected key codes and rings the terminal bell.
	DebugBell bool `yaml:"debug_bell" toml:"debug_bell" jsonschema:"description=Ring the bell on rejected keys"`
}

// DumpConfig tunes the hex dump viewer.
type DumpConfig struct {
	// PageStep is how many lines PageUp/PageDown scroll. 0 means one page minus one line.
	PageStep int `yaml:"page_step,omitempty" toml:"page_step,omitempty" jsonschema:"minimum=0,description=Lines scrolled by PageUp/PageDown"`
}

// AltScreenEnabled reports whether the alternate screen should be used.
func (t TerminalConfig) AltScreenEnabled() bool {
	return t.AltScreen == nil || *t.AltScreen
}

// SetDefaults fills zero values with partui defaults.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Terminal.Columns == 0 {
		c.Terminal.Columns = DefaultColumns
	}
	if c.Terminal.MinLines == 0 {
		c.Terminal.MinLines = DefaultMinLines
	}
	if c.Menu.Spacing == 0 {
		c.Menu.Spacing = DefaultMenuSpacing
	}
}

// Validate checks values the schema cannot express.
func (c *Config) Validate() error {
	if c.Terminal.Columns < 40 {
		return fmt.Errorf("terminal.columns must be at least 40, got %d", c.Terminal.Columns)
	}
	if c.Terminal.MinLines < 8 {
		return fmt.Errorf("terminal.min_lines must be at least 8, got %d", c.Terminal.MinLines)
	}
	if c.Menu.Spacing < 0 || c.Menu.Spacing > c.Terminal.Columns/4 {
		return fmt.Errorf("menu.spacing out of range: %d", c.Menu.Spacing)
	}
	return nil
}

// UnmarshalExtension decodes a specific extension's configuration into the provided struct.
// The target should be a pointer to a struct.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
