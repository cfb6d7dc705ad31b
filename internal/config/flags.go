package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagFunction = flag.String("function", "", "Built-in surface function name")
	flagColormap = flag.String("colormap", "", "Colormap name")
	flagUCount   = flag.Int("ucount", 0, "Grid resolution along u")
	flagVCount   = flag.Int("vcount", 0, "Grid resolution along v")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFunction != "" {
		cfg.Surface.Function = *flagFunction
	}
	if *flagColormap != "" {
		cfg.Color.Map = *flagColormap
	}
	if *flagUCount > 0 {
		cfg.Grid.UCount = *flagUCount
	}
	if *flagVCount > 0 {
		cfg.Grid.VCount = *flagVCount
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
