package vitrine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Duration() != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", cfg.Duration())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitrine.toml")
	content := `
duration_ms = 750

[sphere]
radius = 500

[table]
spacing_x = 100
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Sphere.Radius != 500 {
		t.Errorf("sphere radius = %f, want 500", cfg.Sphere.Radius)
	}
	if cfg.Table.SpacingX != 100 {
		t.Errorf("table spacing_x = %f, want 100", cfg.Table.SpacingX)
	}
	if cfg.DurationMS != 750 {
		t.Errorf("duration_ms = %d, want 750", cfg.DurationMS)
	}

	// Omitted keys keep their stock values.
	if cfg.Table.Columns != 20 || cfg.Table.SpacingY != 180 {
		t.Errorf("table = %+v, want defaults for omitted keys", cfg.Table)
	}
	if cfg.Grid != DefaultConfig().Grid {
		t.Errorf("grid = %+v, want defaults", cfg.Grid)
	}
}

func TestLoadConfigInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[sphere]\nradius = -10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("LoadConfig error = %v, want ErrInvalidInput", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Error("LoadConfig on a missing file should fail")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero columns", func(c *Config) { c.Table.Columns = 0 }},
		{"negative spacing", func(c *Config) { c.Table.SpacingY = -1 }},
		{"zero sphere radius", func(c *Config) { c.Sphere.Radius = 0 }},
		{"zero angle step", func(c *Config) { c.Helix.AngleStep = 0 }},
		{"zero grid depth", func(c *Config) { c.Grid.Z = 0 }},
		{"zero duration", func(c *Config) { c.DurationMS = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: Validate = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}
