package cssselector

import "errors"

// Combinators defined by CSS.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)

// Combined is a terminal selector made of two rendered selectors joined by a
// combinator. It has no append methods; it can only be rendered or combined
// again.
type Combined struct {
	fragment Fragment
	err      error
}

// Combine renders a and b and joins them as "a <combinator> b".
// The combinator is used verbatim. Errors carried by either side are carried
// by the result and reported by Err and Build.
func Combine(a Renderer, combinator string, b Renderer) *Combined {
	left, leftErr := renderOperand(a)
	right, rightErr := renderOperand(b)
	return &Combined{
		fragment: Fragment{
			Kind: KindCombined,
			Text: left + " " + combinator + " " + right,
		},
		err: errors.Join(leftErr, rightErr),
	}
}

// String returns the rendered "a <combinator> b" text, even when an operand
// carried an error.
func (c *Combined) String() string {
	if c == nil {
		return ""
	}
	return c.fragment.Text
}

// Build returns the rendered text, or the first operand error.
func (c *Combined) Build() (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	return c.String(), nil
}

// Err reports the errors carried by either operand.
func (c *Combined) Err() error {
	if c == nil {
		return ErrNilSelector
	}
	return c.err
}

// Len is always 1 for a non-nil combined selector.
func (c *Combined) Len() int {
	if c == nil {
		return 0
	}
	return 1
}

// Fragments returns the single fragment of kind KindCombined.
func (c *Combined) Fragments() []Fragment {
	if c == nil {
		return nil
	}
	return []Fragment{c.fragment}
}

func renderOperand(r Renderer) (string, error) {
	if r == nil {
		return "", ErrNilSelector
	}
	return r.String(), r.Err()
}
