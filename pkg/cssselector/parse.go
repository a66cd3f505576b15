package cssselector

import (
	"fmt"
	"strings"
)

var combinatorTokens = map[string]string{
	Child:             Child,
	NextSibling:       NextSibling,
	SubsequentSibling: SubsequentSibling,
	Descendant:        Descendant,
	"descendant":      Descendant,
}

// ParseFragment splits a "kind:value" token. Only the first colon separates
// kind from value, so "pseudo-class:nth-child(2)" keeps its value intact.
func ParseFragment(token string) (Kind, string, error) {
	name, value, ok := strings.Cut(token, ":")
	if !ok {
		return 0, "", fmt.Errorf("%w: %q is not in kind:value form", ErrInvalidToken, token)
	}
	kind, err := ParseKind(name)
	if err != nil {
		return 0, "", err
	}
	return kind, value, nil
}

// Assemble builds a selector from "kind:value" tokens. Combinator tokens
// (">", "+", "~", " " or "descendant") close the current compound selector
// and combine it with the next one, left to right.
//
//	Assemble("element:div", "id:main", ">", "class:item")
//	// div#main > .item
func Assemble(tokens ...string) (Renderer, error) {
	var (
		result     Renderer
		current    *Selector
		combinator string
	)

	for i, token := range tokens {
		if c, ok := combinatorTokens[token]; ok {
			if current == nil {
				return nil, fmt.Errorf("%w: combinator %q at position %d has no left operand", ErrInvalidToken, token, i)
			}
			result = join(result, combinator, current)
			current = nil
			combinator = c
			continue
		}

		kind, value, err := ParseFragment(token)
		if err != nil {
			return nil, err
		}
		if current == nil {
			current = New()
		}
		if err := current.Add(kind, value); err != nil {
			return nil, fmt.Errorf("token %d (%s): %w", i, token, err)
		}
	}

	if current == nil {
		if result == nil {
			return nil, fmt.Errorf("%w: no fragments", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: trailing combinator %q", ErrInvalidToken, combinator)
	}
	return join(result, combinator, current), nil
}

func join(left Renderer, combinator string, right *Selector) Renderer {
	if left == nil {
		return right
	}
	return Combine(left, combinator, right)
}
