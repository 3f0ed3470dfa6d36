package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/forgelight/internal/forge/scene"
	"github.com/Faultbox/forgelight/internal/logger"
	"github.com/Faultbox/forgelight/internal/viewer"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the viewer window",
	Long: `Open a window showing the scene. Keys: 0/1/2 select the none, implicit and
special HUD renderers, H toggles the highlight, Tab moves the selection, ESC quits.
Drag with the left mouse button to orbit and scroll to zoom.`,
	Args: cobra.NoArgs,
	RunE: runViewer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runViewer(cmd *cobra.Command, args []string) error {
	logger.Info("=== Forgelight viewer ===")

	world, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.Int("objects", world.Objects.Len()),
		zap.Int("selected", world.Selection.Len()),
	)

	// Validated by config.Load.
	rendererType, _ := cfg.Selection.RendererType()

	v, err := viewer.New(viewer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		TickRate:   cfg.Simulation.TickRate,
		Renderer:   rendererType,
		Enabled:    cfg.Selection.Enabled,

		ScreenshotDir: cfg.Graphics.ScreenshotDir,
	}, world)
	if err != nil {
		return err
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	logger.Info("viewer closed normally")
	return nil
}
