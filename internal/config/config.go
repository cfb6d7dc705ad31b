// Package config handles viewer and generator configuration.
package config

import "fmt"

// Config holds all surfaceplot settings.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Scales   ScalesConfig   `yaml:"scales"`
	Color    ColorConfig    `yaml:"color"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GridConfig holds the sampling grid resolution. Both counts must be at
// least 2: the pipeline normalizes by count-1.
type GridConfig struct {
	UCount int `yaml:"u_count"`
	VCount int `yaml:"v_count"`
}

// SurfaceConfig selects the built-in function and its sampling domain.
type SurfaceConfig struct {
	Function string  `yaml:"function"`
	XMin     float64 `yaml:"x_min"`
	XMax     float64 `yaml:"x_max"`
	YMin     float64 `yaml:"y_min"`
	YMax     float64 `yaml:"y_max"`
}

// AxisScaleConfig selects the scale applied to one axis after sampling.
type AxisScaleConfig struct {
	Kind   string  `yaml:"kind"` // "identity" or "linear"
	OutMin float64 `yaml:"out_min"`
	OutMax float64 `yaml:"out_max"`
}

// ScalesConfig holds the per-axis scale settings.
type ScalesConfig struct {
	X AxisScaleConfig `yaml:"x"`
	Y AxisScaleConfig `yaml:"y"`
	Z AxisScaleConfig `yaml:"z"`

	// ExcludeInvalidExtent keeps sanitized invalid samples out of the
	// per-axis min/max used to build the scales.
	ExcludeInvalidExtent bool `yaml:"exclude_invalid_extent"`
}

// ColorConfig selects the colormap applied to the surface height.
type ColorConfig struct {
	Map   string  `yaml:"map"`   // colormap name (viridis, plasma, grayscale)
	ZMin  float64 `yaml:"z_min"` // height mapped to the colormap start
	ZMax  float64 `yaml:"z_max"` // height mapped to the colormap end
	Alpha float64 `yaml:"alpha"` // 0-255
}

// GraphicsConfig holds display settings for the viewer.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ExportConfig holds output paths for the headless generator.
type ExportConfig struct {
	OBJPath     string `yaml:"obj_path"`
	PreviewPath string `yaml:"preview_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			UCount: 64,
			VCount: 64,
		},
		Surface: SurfaceConfig{
			Function: "ripple",
			XMin:     -3,
			XMax:     3,
			YMin:     -3,
			YMax:     3,
		},
		Scales: ScalesConfig{
			X: AxisScaleConfig{Kind: "identity"},
			Y: AxisScaleConfig{Kind: "identity"},
			Z: AxisScaleConfig{Kind: "linear", OutMin: -1, OutMax: 1},
		},
		Color: ColorConfig{
			Map:   "viridis",
			ZMin:  -1,
			ZMax:  1,
			Alpha: 255,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Export: ExportConfig{
			OBJPath:     "surface.obj",
			PreviewPath: "surface.webp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the invariants the pipeline cannot guard itself.
func (c *Config) Validate() error {
	if c.Grid.UCount < 2 || c.Grid.VCount < 2 {
		return fmt.Errorf("grid resolution must be at least 2x2, got %dx%d", c.Grid.UCount, c.Grid.VCount)
	}
	if c.Surface.XMin >= c.Surface.XMax {
		return fmt.Errorf("surface domain: x_min %f must be below x_max %f", c.Surface.XMin, c.Surface.XMax)
	}
	if c.Surface.YMin >= c.Surface.YMax {
		return fmt.Errorf("surface domain: y_min %f must be below y_max %f", c.Surface.YMin, c.Surface.YMax)
	}
	for name, s := range map[string]AxisScaleConfig{"x": c.Scales.X, "y": c.Scales.Y, "z": c.Scales.Z} {
		switch s.Kind {
		case "", "identity", "linear":
		default:
			return fmt.Errorf("scales.%s: unknown kind %q", name, s.Kind)
		}
	}
	return nil
}
