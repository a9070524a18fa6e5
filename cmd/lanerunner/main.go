// lanerunner is a small 3D runner: steer a player along three lanes of an
// endless checkered platform and jump over the holes.
//
// Usage:
//
//	lanerunner                 - Open the game window
//	lanerunner terrain         - Print the hole map of the platform
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.lanerunner, ./configs)
//	--log-level <level> - debug, info, warn or error
//	--fps <rate>        - Frame rate cap, 0 = unlimited
//	--no-vsync          - Disable vsync
package main

import (
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagFPS      int
	flagNoVSync  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lanerunner",
	})
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate cap, 0 = unlimited (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoVSync, "no-vsync", false, "Disable vsync")

	rootCmd.AddCommand(terrainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("lanerunner failed", "err", err)
		closer.Exit(1)
	}
	closer.Close()
}

var rootCmd = &cobra.Command{
	Use:   "lanerunner",
	Short: "Run along the lanes and jump the holes",
	Long: `lanerunner opens a window showing a checkered platform of three lanes
with holes cut into it. Arrow keys steer, space jumps, r respawns.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyLogLevel,
	RunE:              runGame,
}

func applyLogLevel(cmd *cobra.Command, args []string) error {
	if flagLogLevel == "" {
		return nil
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}
