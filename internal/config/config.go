// Package config handles forgeview configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/forgelight/internal/forge/highlight"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Selection  SelectionConfig  `yaml:"selection"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SimulationConfig holds the host tick settings.
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// SelectionConfig holds the selection highlight settings.
type SelectionConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Renderer string `yaml:"renderer"` // none, implicit or special_hud
}

// RendererType parses Renderer.
func (s SelectionConfig) RendererType() (highlight.RendererType, error) {
	return highlight.ParseRendererType(s.Renderer)
}

// SceneConfig holds the scene to load.
type SceneConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,

			ScreenshotDir: "screenshots",
		},
		Simulation: SimulationConfig{
			TickRate: 60,
		},
		Selection: SelectionConfig{
			Enabled:  true,
			Renderer: "implicit",
		},
		Scene: SceneConfig{
			Path: "scene.yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if _, err := c.Selection.RendererType(); err != nil {
		return fmt.Errorf("selection.renderer: %w", err)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	return nil
}
