package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/Faultbox/forgelight/internal/forge/highlight"
)

func TestDefault(t *testing.T) {
	cfg := Default()

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

	// Test simulation defaults
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.Simulation.TickRate)
	}

	// Test selection defaults
	if !cfg.Selection.Enabled {
		t.Error("expected selection highlight enabled by default")
	}
	if rt, err := cfg.Selection.RendererType(); err != nil || rt != highlight.RendererImplicit {
		t.Errorf("expected implicit renderer, got %v (%v)", rt, err)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

simulation:
  tick_rate: 30

selection:
  enabled: false
  renderer: special_hud

scene:
  path: "maps/guardian.yaml"

logging:
  level: "debug"
  log_file: "forge.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Simulation.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", cfg.Simulation.TickRate)
	}
	if cfg.Selection.Enabled {
		t.Error("expected selection highlight disabled")
	}
	if rt, _ := cfg.Selection.RendererType(); rt != highlight.RendererSpecialHud {
		t.Errorf("expected special_hud renderer, got %v", rt)
	}
	if cfg.Scene.Path != "maps/guardian.yaml" {
		t.Errorf("expected scene maps/guardian.yaml, got %s", cfg.Scene.Path)
	}
	if cfg.Logging.LogFile != "forge.log" {
		t.Errorf("expected log file 'forge.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown renderer", func(c *Config) { c.Selection.Renderer = "wireframe" }},
		{"zero tick rate", func(c *Config) { c.Simulation.TickRate = 0 }},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "renderer and disable",
			args: []string{"--renderer", "special_hud", "--no-highlight"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Selection.Renderer != "special_hud" {
					t.Errorf("expected renderer special_hud, got %s", cfg.Selection.Renderer)
				}
				if cfg.Selection.Enabled {
					t.Error("expected highlight disabled")
				}
			},
		},
		{
			name: "scene and tick rate",
			args: []string{"--scene", "other.yaml", "--tick-rate", "30"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "other.yaml" {
					t.Errorf("expected scene other.yaml, got %s", cfg.Scene.Path)
				}
				if cfg.Simulation.TickRate != 30 {
					t.Errorf("expected tick rate 30, got %d", cfg.Simulation.TickRate)
				}
			},
		},
		{
			name: "fullscreen flag",
			args: []string{"--fullscreen"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
		},
		{
			name: "width and height flags",
			args: []string{"--width", "2560", "--height", "1440"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags := BindFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			cfg := Default()
			flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
selection:
  renderer: none
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"--config", configPath, "--width", "1920"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags)
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
	if cfg.Selection.Renderer != "none" {
		t.Errorf("expected renderer none from file, got %s", cfg.Selection.Renderer)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := Load(flags); err == nil {
		t.Error("expected error for missing explicit config file")
	}

	flags = &Flags{Renderer: "wireframe", Config: writeEmpty(t)}
	if _, err := Load(flags); err == nil {
		t.Error("expected validation error for unknown renderer")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Selection.Renderer = "special_hud"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Selection.Renderer != "special_hud" {
		t.Errorf("expected renderer special_hud after reload, got %s", loaded.Selection.Renderer)
	}
}

func writeEmpty(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}
