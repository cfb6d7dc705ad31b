package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test grid defaults
	if cfg.Grid.UCount != 64 {
		t.Errorf("expected u_count 64, got %d", cfg.Grid.UCount)
	}
	if cfg.Grid.VCount != 64 {
		t.Errorf("expected v_count 64, got %d", cfg.Grid.VCount)
	}

	// Test surface defaults
	if cfg.Surface.Function != "ripple" {
		t.Errorf("expected function 'ripple', got %s", cfg.Surface.Function)
	}
	if cfg.Surface.XMin != -3 || cfg.Surface.XMax != 3 {
		t.Errorf("expected x domain [-3,3], got [%f,%f]", cfg.Surface.XMin, cfg.Surface.XMax)
	}

	// Test scale defaults
	if cfg.Scales.X.Kind != "identity" {
		t.Errorf("expected x scale 'identity', got %s", cfg.Scales.X.Kind)
	}
	if cfg.Scales.Z.Kind != "linear" {
		t.Errorf("expected z scale 'linear', got %s", cfg.Scales.Z.Kind)
	}
	if cfg.Scales.Z.OutMin != -1 || cfg.Scales.Z.OutMax != 1 {
		t.Errorf("expected z scale range [-1,1], got [%f,%f]", cfg.Scales.Z.OutMin, cfg.Scales.Z.OutMax)
	}
	if cfg.Scales.ExcludeInvalidExtent {
		t.Error("expected exclude_invalid_extent to be false by default")
	}

	// Test color defaults
	if cfg.Color.Map != "viridis" {
		t.Errorf("expected colormap 'viridis', got %s", cfg.Color.Map)
	}
	if cfg.Color.Alpha != 255 {
		t.Errorf("expected alpha 255, got %f", cfg.Color.Alpha)
	}

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
grid:
  u_count: 128
  v_count: 96

surface:
  function: "saddle"
  x_min: -2
  x_max: 2
  y_min: -2
  y_max: 2

scales:
  z:
    kind: "linear"
    out_min: 0
    out_max: 2
  exclude_invalid_extent: true

color:
  map: "plasma"
  z_min: 0
  z_max: 2
  alpha: 200

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

logging:
  level: "debug"
  log_file: "surface.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Grid.UCount != 128 {
		t.Errorf("expected u_count 128, got %d", cfg.Grid.UCount)
	}
	if cfg.Grid.VCount != 96 {
		t.Errorf("expected v_count 96, got %d", cfg.Grid.VCount)
	}

	if cfg.Surface.Function != "saddle" {
		t.Errorf("expected function 'saddle', got %s", cfg.Surface.Function)
	}
	if cfg.Surface.XMin != -2 {
		t.Errorf("expected x_min -2, got %f", cfg.Surface.XMin)
	}

	if cfg.Scales.Z.OutMax != 2 {
		t.Errorf("expected z out_max 2, got %f", cfg.Scales.Z.OutMax)
	}
	if !cfg.Scales.ExcludeInvalidExtent {
		t.Error("expected exclude_invalid_extent to be true")
	}

	if cfg.Color.Map != "plasma" {
		t.Errorf("expected colormap 'plasma', got %s", cfg.Color.Map)
	}
	if cfg.Color.Alpha != 200 {
		t.Errorf("expected alpha 200, got %f", cfg.Color.Alpha)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "surface.log" {
		t.Errorf("expected log file 'surface.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
grid:
  u_count: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "function flag",
			setup: func() {
				*flagFunction = "torus"
			},
			verify: func(cfg *Config) {
				if cfg.Surface.Function != "torus" {
					t.Errorf("expected function 'torus', got %s", cfg.Surface.Function)
				}
			},
			teardown: func() {
				*flagFunction = ""
			},
		},
		{
			name: "grid flags",
			setup: func() {
				*flagUCount = 32
				*flagVCount = 48
			},
			verify: func(cfg *Config) {
				if cfg.Grid.UCount != 32 {
					t.Errorf("expected u_count 32, got %d", cfg.Grid.UCount)
				}
				if cfg.Grid.VCount != 48 {
					t.Errorf("expected v_count 48, got %d", cfg.Grid.VCount)
				}
			},
			teardown: func() {
				*flagUCount = 0
				*flagVCount = 0
			},
		},
		{
			name: "colormap flag",
			setup: func() {
				*flagColormap = "grayscale"
			},
			verify: func(cfg *Config) {
				if cfg.Color.Map != "grayscale" {
					t.Errorf("expected colormap 'grayscale', got %s", cfg.Color.Map)
				}
			},
			teardown: func() {
				*flagColormap = ""
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
grid:
  u_count: 100
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}

	// UCount should be from file
	if cfg.Grid.UCount != 100 {
		t.Errorf("expected u_count 100 from file, got %d", cfg.Grid.UCount)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(cfg *Config) {}, false},
		{"grid too small", func(cfg *Config) { cfg.Grid.UCount = 1 }, true},
		{"inverted x domain", func(cfg *Config) { cfg.Surface.XMin = 5; cfg.Surface.XMax = -5 }, true},
		{"inverted y domain", func(cfg *Config) { cfg.Surface.YMin = 2; cfg.Surface.YMax = 2 }, true},
		{"unknown scale kind", func(cfg *Config) { cfg.Scales.Y.Kind = "log" }, true},
		{"empty scale kind ok", func(cfg *Config) { cfg.Scales.X.Kind = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
