package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/forgelight/internal/forge/scene"
	"github.com/Faultbox/forgelight/internal/inspect"
)

var dumpTicks int

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Run the scene headlessly and print what the highlight draws",
	Long:  "Tick the scene without a window and print, per frame, the selection boxes, draw calls and HUD markers the highlight produced.",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().IntVarP(&dumpTicks, "ticks", "n", 10, "Number of ticks to run")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", dumpTicks)
	}

	world, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	rendererType, _ := cfg.Selection.RendererType()
	report := inspect.Run(world, inspect.Options{
		Ticks:    dumpTicks,
		TickRate: cfg.Simulation.TickRate,
		Renderer: rendererType,
		Enabled:  cfg.Selection.Enabled,
	})
	return report.Print(cmd.OutOrStdout())
}
