package vitrine

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// TableConfig sizes the flat table arrangement.
type TableConfig struct {
	Columns  int     `toml:"columns"`
	Rows     int     `toml:"rows"`
	SpacingX float64 `toml:"spacing_x"`
	SpacingY float64 `toml:"spacing_y"`
}

// SphereConfig sizes the spherical arrangement.
type SphereConfig struct {
	Radius float64 `toml:"radius"`
}

// HelixConfig sizes the double-helix arrangement.
type HelixConfig struct {
	Radius     float64 `toml:"radius"`
	Separation float64 `toml:"separation"`
	AngleStep  float64 `toml:"angle_step"`
}

// GridConfig sizes the volumetric grid arrangement.
type GridConfig struct {
	X       int     `toml:"x"`
	Y       int     `toml:"y"`
	Z       int     `toml:"z"`
	Spacing float64 `toml:"spacing"`
}

// Config carries every layout knob plus the default transition duration.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	Table  TableConfig  `toml:"table"`
	Sphere SphereConfig `toml:"sphere"`
	Helix  HelixConfig  `toml:"helix"`
	Grid   GridConfig   `toml:"grid"`

	// DurationMS is the default transition duration in milliseconds.
	DurationMS int `toml:"duration_ms"`
}

// DefaultConfig returns the stock geometry: a 20×10 table, an 800-unit
// sphere, a 900-unit double helix, a 5×4×10 grid, and 2s transitions.
func DefaultConfig() Config {
	return Config{
		Table:      TableConfig{Columns: 20, Rows: 10, SpacingX: 140, SpacingY: 180},
		Sphere:     SphereConfig{Radius: 800},
		Helix:      HelixConfig{Radius: 900, Separation: 8, AngleStep: 0.175},
		Grid:       GridConfig{X: 5, Y: 4, Z: 10, Spacing: 400},
		DurationMS: 2000,
	}
}

// Duration returns the default transition duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// Validate reports ErrInvalidInput for non-positive dimensions or
// spacings.
func (c Config) Validate() error {
	switch {
	case c.Table.Columns <= 0 || c.Table.Rows <= 0:
		return fmt.Errorf("table dimensions %dx%d: %w", c.Table.Columns, c.Table.Rows, ErrInvalidInput)
	case c.Table.SpacingX <= 0 || c.Table.SpacingY <= 0:
		return fmt.Errorf("table spacing: %w", ErrInvalidInput)
	case c.Sphere.Radius <= 0:
		return fmt.Errorf("sphere radius %v: %w", c.Sphere.Radius, ErrInvalidInput)
	case c.Helix.Radius <= 0 || c.Helix.Separation <= 0 || c.Helix.AngleStep == 0:
		return fmt.Errorf("helix geometry: %w", ErrInvalidInput)
	case c.Grid.X <= 0 || c.Grid.Y <= 0 || c.Grid.Z <= 0 || c.Grid.Spacing <= 0:
		return fmt.Errorf("grid geometry: %w", ErrInvalidInput)
	case c.DurationMS <= 0:
		return fmt.Errorf("duration %dms: %w", c.DurationMS, ErrInvalidInput)
	}
	return nil
}

// LoadConfig decodes a TOML file over DefaultConfig, so omitted keys keep
// their stock values, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
