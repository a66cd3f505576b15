package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
	"github.com/Pavel0606/mitso-core-js/pkg/logger"
)

var encodeCmd = &cobra.Command{
	Use:   "encode key=value [key=value...]",
	Short: "Build a JSON object from key=value pairs",
	Long: `Build a JSON object from key=value pairs and print it.

Fields keep the order they were given in. A value that is valid JSON is
stored as is (numbers, booleans, null, arrays, objects); anything else is
stored as a string. Repeating a key replaces the value in place.`,
	Example: `  objtasks encode width=10 height=5
  objtasks encode name=box tags='["a","b"]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(args)
	if err != nil {
		return err
	}

	out, err := jsonx.Encode(doc)
	if err != nil {
		return err
	}

	log.DebugContext(commandContext(cmd), "document encoded", logger.Count(doc.Len()))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func buildDocument(pairs []string) (*jsonx.Document, error) {
	doc := jsonx.NewDocument()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q: expected key=value", pair)
		}

		var err error
		if gjson.Valid(value) {
			err = doc.SetRaw(key, value)
		} else {
			err = doc.Set(key, value)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
