package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Pavel0606/mitso-core-js/pkg/logger"
	"github.com/Pavel0606/mitso-core-js/pkg/shape"
)

var areaRadius float64

var areaCmd = &cobra.Command{
	Use:   "area [width height]",
	Short: "Print the area of a rectangle or, with --radius, a circle",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runArea,
}

func init() {
	areaCmd.Flags().Float64Var(&areaRadius, "radius", 0, "Circle radius; replaces width and height")
}

func runArea(cmd *cobra.Command, args []string) error {
	var (
		s    shape.Shape
		kind = "rectangle"
	)
	if cmd.Flags().Changed("radius") {
		if len(args) != 0 {
			return fmt.Errorf("--radius takes no positional arguments, got %d", len(args))
		}
		s, kind = shape.NewCircle(areaRadius), "circle"
	} else {
		if len(args) != 2 {
			return fmt.Errorf("expected width and height, got %d argument(s)", len(args))
		}
		width, err := parseFloat("width", args[0])
		if err != nil {
			return err
		}
		height, err := parseFloat("height", args[1])
		if err != nil {
			return err
		}
		s = shape.NewRectangle(width, height)
	}

	area := s.Area()
	log.DebugContext(commandContext(cmd), "area computed", logger.Kind(kind))
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(area))
	return nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
