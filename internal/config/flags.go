package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagBackground = flag.String("background", "", "Background texture path")
	flagCharacter  = flag.String("char", "", "Character texture path")
	flagHotReload  = flag.Bool("hot-reload", false, "Reload textures and shaders when they change on disk")
	flagFPS        = flag.Int("fps", -1, "Frame cap (0 = unlimited)")
	flagNoHUD      = flag.Bool("no-hud", false, "Start with the status overlay hidden")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagBackground != "" {
		cfg.Assets.Background = *flagBackground
	}
	if *flagCharacter != "" {
		cfg.Assets.Character = *flagCharacter
	}
	if *flagHotReload {
		cfg.Assets.HotReload = true
	}
	if *flagNoHUD {
		cfg.HUD.Show = false
	}
	if *flagFPS >= 0 {
		cfg.Window.FPSLimit = *flagFPS
	}
}
