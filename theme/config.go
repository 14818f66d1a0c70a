package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/radial/menu"
)

// maxConfigSize bounds the size of menu files.
const maxConfigSize = 1 << 20

// Config describes a complete menu: its items, dimensions and style.
//
// A minimal menu file only lists items:
//
//	items:
//	  - value: copy
//	  - value: paste
//	    label: Paste
type Config struct {
	Items []menu.Item `yaml:"items"`
	// Value is the initially selected value. An empty value leaves the menu
	// without a selection.
	Value           string  `yaml:"value"`
	TriggerDiameter float64 `yaml:"trigger_diameter"`
	MenuDiameter    float64 `yaml:"menu_diameter"`
	Gap             float64 `yaml:"gap"`
	Theme           Theme   `yaml:"theme"`
}

// DefaultConfig returns a configuration without items, with a 50 unit trigger
// inside a 200 unit menu, 2 unit gaps and the [Default] theme.
func DefaultConfig() Config {
	return Config{
		TriggerDiameter: 2 * menu.DefaultGeometry.TriggerRadius,
		MenuDiameter:    2 * menu.DefaultGeometry.MenuRadius,
		Gap:             menu.DefaultGeometry.Gap,
		Theme:           Default(),
	}
}

// Geometry returns the menu dimensions described by the configuration.
func (cfg Config) Geometry() menu.Geometry {
	return menu.Geometry{
		TriggerRadius: cfg.TriggerDiameter / 2,
		MenuRadius:    cfg.MenuDiameter / 2,
		StrokeWidth:   cfg.Theme.StrokeWidth,
		Gap:           cfg.Gap,
	}
}

// MenuItems returns the configured items. Items without a label are labeled
// with their value.
func (cfg Config) MenuItems() []menu.Item {
	items := make([]menu.Item, len(cfg.Items))
	for i, it := range cfg.Items {
		if it.Label == "" {
			it.Label = it.Value
		}
		items[i] = it
	}
	return items
}

// Validate checks the parts of the configuration that do not depend on the
// menu geometry. Geometry is checked when the menu is laid out.
func (cfg Config) Validate() error {
	if cfg.TriggerDiameter <= 0 {
		return fmt.Errorf("trigger_diameter must be positive, got %g", cfg.TriggerDiameter)
	}
	if cfg.MenuDiameter <= cfg.TriggerDiameter {
		return fmt.Errorf("menu_diameter %g must be larger than trigger_diameter %g", cfg.MenuDiameter, cfg.TriggerDiameter)
	}
	for i, it := range cfg.Items {
		if it.Value == "" {
			return fmt.Errorf("item %d has no value", i)
		}
	}
	return nil
}

// ParseConfig parses a menu description. Settings missing from data keep the
// values of [DefaultConfig].
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse menu config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid menu config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the menu description at path.
func LoadConfig(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("load menu config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("load menu config %s: file too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load menu config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (cfg Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
