package cssselector

import "strings"

// Fragment is one decorated piece of a selector, e.g. "#main" or ".item".
type Fragment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Renderer is anything that renders to a selector string.
type Renderer interface {
	String() string
	Build() (string, error)
	Err() error
}

// Selector accumulates fragments in kind order.
//
// Builder methods return the receiver so calls can be chained. The first
// rejected append is recorded and every later append becomes a no-op, so a
// chain can be checked once at the end with Err or Build.
type Selector struct {
	fragments []Fragment
	counts    map[Kind]int
	err       error
}

// New creates an empty selector.
func New() *Selector {
	return &Selector{counts: make(map[Kind]int)}
}

// Element starts a new selector with a type selector, e.g. "div".
func Element(value string) *Selector { return New().Element(value) }

// ID starts a new selector with "#value".
func ID(value string) *Selector { return New().ID(value) }

// Class starts a new selector with ".value".
func Class(value string) *Selector { return New().Class(value) }

// Attribute starts a new selector with "[value]". The value is used as is,
// so it may carry an operator: `href$=".png"`.
func Attribute(value string) *Selector { return New().Attribute(value) }

// PseudoClass starts a new selector with ":value".
func PseudoClass(value string) *Selector { return New().PseudoClass(value) }

// PseudoElement starts a new selector with "::value".
func PseudoElement(value string) *Selector { return New().PseudoElement(value) }

// Element appends a type selector. It must come first and at most once.
func (s *Selector) Element(value string) *Selector { return s.chain(KindElement, value) }

// ID appends "#value". It must follow any element and appear at most once.
func (s *Selector) ID(value string) *Selector { return s.chain(KindID, value) }

// Class appends ".value". Classes may repeat.
func (s *Selector) Class(value string) *Selector { return s.chain(KindClass, value) }

// Attribute appends "[value]". Attributes may repeat.
func (s *Selector) Attribute(value string) *Selector { return s.chain(KindAttribute, value) }

// PseudoClass appends ":value". Pseudo-classes may repeat.
func (s *Selector) PseudoClass(value string) *Selector { return s.chain(KindPseudoClass, value) }

// PseudoElement appends "::value". It must come last and at most once.
func (s *Selector) PseudoElement(value string) *Selector { return s.chain(KindPseudoElement, value) }

// Add appends a fragment of the given kind after checking ordering and
// uniqueness. On failure the selector is left unchanged. A selector that
// already failed keeps returning its first error.
func (s *Selector) Add(kind Kind, value string) error {
	if s.err != nil {
		return s.err
	}
	if !kind.Appendable() {
		return NewErrUnknownKind(kind)
	}
	if err := s.checkOrder(kind); err != nil {
		return err
	}
	if err := s.checkDuplicate(kind); err != nil {
		return err
	}

	s.fragments = append(s.fragments, Fragment{Kind: kind, Text: kind.decorate(value)})
	if kind.Unique() {
		if s.counts == nil {
			s.counts = make(map[Kind]int)
		}
		s.counts[kind]++
	}
	return nil
}

// String concatenates fragment texts without separators.
func (s *Selector) String() string {
	if s == nil {
		return ""
	}
	return render(s.fragments)
}

// Build returns the rendered selector, or the first error hit while building.
func (s *Selector) Build() (string, error) {
	if err := s.Err(); err != nil {
		return "", err
	}
	return s.String(), nil
}

// Err returns the first error recorded by a chained append.
func (s *Selector) Err() error {
	if s == nil {
		return ErrNilSelector
	}
	return s.err
}

// Len returns the number of fragments.
func (s *Selector) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fragments)
}

// Fragments returns a copy of the fragments in order.
func (s *Selector) Fragments() []Fragment {
	if s == nil {
		return nil
	}
	return append([]Fragment(nil), s.fragments...)
}

func (s *Selector) chain(kind Kind, value string) *Selector {
	if s.err == nil {
		s.err = s.Add(kind, value)
	}
	return s
}

func (s *Selector) checkOrder(next Kind) error {
	n := len(s.fragments)
	if n == 0 {
		return nil
	}
	if last := s.fragments[n-1].Kind; last.rank() > next.rank() {
		return NewErrOrderViolation(last, next)
	}
	return nil
}

func (s *Selector) checkDuplicate(kind Kind) error {
	if kind.Unique() && s.counts[kind] > 0 {
		return NewErrDuplicateFragment(kind)
	}
	return nil
}

func render(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}
