package main

import (
	"fmt"

	"lanerunner/internal/terrain"

	"github.com/spf13/cobra"
)

var (
	flagFrom int
	flagTo   int
)

var terrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Print the hole map of the platform",
	Long: `Prints one row per lane for the columns in [from, to).
'#' is a solid tile, '.' a hole.`,
	RunE: runTerrain,
}

func init() {
	terrainCmd.Flags().IntVar(&flagFrom, "from", -20, "First column")
	terrainCmd.Flags().IntVar(&flagTo, "to", 20, "Column after the last one")
}

func runTerrain(cmd *cobra.Command, args []string) error {
	if flagTo <= flagFrom {
		return fmt.Errorf("--to (%d) must be greater than --from (%d)", flagTo, flagFrom)
	}

	out := cmd.OutOrStdout()
	rows := terrain.Map(terrain.LaneField{}, flagFrom, flagTo)
	fmt.Fprintf(out, "columns %d..%d\n", flagFrom, flagTo-1)
	for i, row := range rows {
		fmt.Fprintf(out, "  z=%2d  %s\n", terrain.Lanes[i], row)
	}
	return nil
}
