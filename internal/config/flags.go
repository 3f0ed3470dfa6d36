package config

import "github.com/spf13/pflag"

// Flags holds the command-line overrides bound by BindFlags.
type Flags struct {
	Config     string
	Debug      bool
	Scene      string
	Renderer   string
	Disabled   bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	TickRate   int
}

// BindFlags registers the config overrides on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.Config, "config", "c", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Scene, "scene", "", "Scene file to load")
	fs.StringVar(&f.Renderer, "renderer", "", "Selection renderer: none, implicit or special_hud")
	fs.BoolVar(&f.Disabled, "no-highlight", false, "Start with the selection highlight disabled")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.TickRate, "tick-rate", 0, "Simulation ticks per second")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Scene != "" {
		cfg.Scene.Path = f.Scene
	}
	if f.Renderer != "" {
		cfg.Selection.Renderer = f.Renderer
	}
	if f.Disabled {
		cfg.Selection.Enabled = false
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.TickRate > 0 {
		cfg.Simulation.TickRate = f.TickRate
	}
}
