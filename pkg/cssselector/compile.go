package cssselector

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Compile parses the rendered selector with cascadia. Pseudo-elements are
// accepted. A builder error is returned as is, before any parsing.
func Compile(r Renderer) (cascadia.SelectorGroup, error) {
	text, err := renderOperand(r)
	if err != nil {
		return nil, err
	}

	group, err := cascadia.ParseGroupWithPseudoElements(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSelector, text, err)
	}
	return group, nil
}

// Specificity returns the CSS specificity of the rendered selector as
// (ids, classes/attributes/pseudo-classes, elements/pseudo-elements).
func Specificity(r Renderer) (cascadia.Specificity, error) {
	group, err := Compile(r)
	if err != nil {
		return cascadia.Specificity{}, err
	}
	var best cascadia.Specificity
	for _, sel := range group {
		if sp := sel.Specificity(); best.Less(sp) {
			best = sp
		}
	}
	return best, nil
}

// Query parses an HTML document and returns the elements matching r.
func Query(r Renderer, document io.Reader) (*goquery.Selection, error) {
	group, err := Compile(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc.FindMatcher(cascadia.Selector(group.Match)), nil
}
