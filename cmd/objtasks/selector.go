package main

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	css "github.com/Pavel0606/mitso-core-js/pkg/cssselector"
	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
	"github.com/Pavel0606/mitso-core-js/pkg/logger"
)

var (
	selectorValidate bool
	selectorMatch    string
	selectorJSON     bool
)

var selectorCmd = &cobra.Command{
	Use:   "selector <kind:value|combinator>...",
	Short: "Build a CSS selector from kind:value tokens",
	Long: `Build a CSS selector from kind:value tokens and print it.

Kinds, in the order they must appear within one compound selector:
element, id, class, attribute, pseudo-class, pseudo-element.
element, id and pseudo-element may appear at most once.

Combinator tokens (">", "+", "~", "descendant") start a new compound selector
and join it to everything before it.`,
	Example: `  objtasks selector element:div id:main class:item
  objtasks selector element:ul ">" element:li pseudo-class:first-child
  objtasks selector --match page.html element:a attribute:href`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelector,
}

func init() {
	selectorCmd.Flags().BoolVar(&selectorValidate, "validate", false, "Compile the selector and print its specificity")
	selectorCmd.Flags().StringVar(&selectorMatch, "match", "", "HTML file to match the selector against")
	selectorCmd.Flags().BoolVar(&selectorJSON, "json", false, "Print the selector fragments as JSON")
}

func runSelector(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	sel, err := css.Assemble(args...)
	if err != nil {
		return err
	}
	text, err := sel.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text)

	if selectorJSON {
		if f, ok := sel.(interface{ Fragments() []css.Fragment }); ok {
			encoded, err := jsonx.Encode(f.Fragments())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, encoded)
		}
	}

	if selectorValidate {
		sp, err := css.Specificity(sel)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "specificity: %d,%d,%d\n", sp[0], sp[1], sp[2])
	}

	if selectorMatch != "" {
		f, err := os.Open(selectorMatch)
		if err != nil {
			return fmt.Errorf("open %s: %w", selectorMatch, err)
		}
		defer f.Close()

		matches, err := css.Query(sel, f)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "selector matched", logger.Selector(text), logger.Count(matches.Length()))

		var htmlErr error
		matches.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			html, err := goquery.OuterHtml(s)
			if err != nil {
				htmlErr = err
				return false
			}
			fmt.Fprintln(out, html)
			return true
		})
		if htmlErr != nil {
			return fmt.Errorf("render match: %w", htmlErr)
		}
	}

	return nil
}
