package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
	"github.com/Pavel0606/mitso-core-js/pkg/logger"
	"github.com/Pavel0606/mitso-core-js/pkg/shape"
)

// areaBehavior is the behavior set shared by the shape prototypes.
type areaBehavior interface {
	Area(f shape.Fields) float64
}

var prototypes = map[string]areaBehavior{
	"rectangle": shape.RectanglePrototype{},
	"circle":    shape.CirclePrototype{},
}

var decodeProto string

var decodeCmd = &cobra.Command{
	Use:   "decode [json|-]",
	Short: "Decode JSON into a shape prototype and print its area",
	Long: `Decode a JSON object, bind it to a shape prototype and print its fields
and area. Reads stdin when the argument is "-" or missing.`,
	Example: `  objtasks decode '{"width":10,"height":5}'
  echo '{"radius":1}' | objtasks decode --proto circle`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeProto, "proto", "rectangle", "Prototype to bind: "+strings.Join(prototypeNames(), ", "))
}

func runDecode(cmd *cobra.Command, args []string) error {
	behavior, ok := prototypes[decodeProto]
	if !ok {
		return fmt.Errorf("unknown prototype %q: must be one of %s", decodeProto, strings.Join(prototypeNames(), ", "))
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	obj, err := jsonx.Decode(behavior, text)
	if err != nil {
		return err
	}
	if !obj.IsObject() {
		return fmt.Errorf("%w: got %s", jsonx.ErrNotObject, obj.Raw())
	}

	log.DebugContext(commandContext(cmd), "object decoded", logger.Kind(decodeProto), logger.Count(obj.Len()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "keys: %s\n", strings.Join(obj.Keys(), ", "))
	fmt.Fprintf(out, "area: %s\n", formatFloat(obj.Behavior().Area(obj)))
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func prototypeNames() []string {
	names := make([]string, 0, len(prototypes))
	for name := range prototypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
