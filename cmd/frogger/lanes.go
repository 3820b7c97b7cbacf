package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var flagLanesYAML bool

var lanesCmd = &cobra.Command{
	Use:   "lanes",
	Short: "Show the lane tables",
	Long:  `Prints the road and river lanes the game is built from.`,
	Args:  cobra.NoArgs,
	RunE:  runLanes,
}

func init() {
	lanesCmd.Flags().BoolVar(&flagLanesYAML, "yaml", false, "Print the raw embedded YAML")
}

func runLanes(cmd *cobra.Command, args []string) error {
	if flagLanesYAML {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zones := frogger.Zones(cfg.Zones)
	fmt.Printf("Grid: %dx%d cells of %d units, %d lives, %d goals worth %d\n",
		cfg.Grid.Cols, cfg.Grid.Rows, cfg.Grid.CellSize,
		cfg.Rules.Lives, cfg.Rules.GoalCount, cfg.Rules.GoalPoints)
	fmt.Println()

	lanes := make(map[int]config.LaneSpec, len(cfg.Road)+len(cfg.River))
	for _, l := range append(append([]config.LaneSpec(nil), cfg.River...), cfg.Road...) {
		lanes[l.Row] = l
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-5s  %s\n", "Row", "Kind", "Width", "Speed", "Dir", "Color")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-5s  %s\n", "---", "----", "-----", "-----", "---", "-----")

	for row := 0; row < cfg.Grid.Rows; row++ {
		kind := zones.KindOf(row)
		l, ok := lanes[row]
		if !ok {
			fmt.Printf("  %-4d  %-6s\n", row, kind)
			continue
		}
		fmt.Printf("  %-4d  %-6s  %-5d  %-6.0f  %-5s  %s\n", row, kind, l.Width, l.Speed, l.Direction, l.Color)
	}
	return nil
}
