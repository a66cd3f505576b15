package cssselector

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a selector fragment.
// Appendable kinds are declared in the order they must appear in a selector.
type Kind int

const (
	KindElement Kind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
	// KindCombined marks the single fragment of a Combined selector.
	KindCombined
)

// noRank is the rank of kinds outside the fragment ordering.
const noRank = -1

var kindNames = map[Kind]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
	KindCombined:      "combined",
}

var kindAliases = map[string]Kind{
	"element":        KindElement,
	"tag":            KindElement,
	"id":             KindID,
	"class":          KindClass,
	"attribute":      KindAttribute,
	"attr":           KindAttribute,
	"pseudo-class":   KindPseudoClass,
	"pseudoclass":    KindPseudoClass,
	"pseudo-element": KindPseudoElement,
	"pseudoelement":  KindPseudoElement,
}

// String returns the kind name, e.g. "pseudo-class".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, NewErrUnknownKind(k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name or alias, including "combined".
func (k *Kind) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), kindNames[KindCombined]) {
		*k = KindCombined
		return nil
	}
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind by name. Names are case-insensitive; "tag" and
// "attr" are accepted as aliases. "combined" is not appendable and is rejected.
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidToken, name)
	}
	return k, nil
}

// Appendable reports whether fragments of this kind can be added to a Selector.
func (k Kind) Appendable() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// Unique reports whether at most one fragment of this kind may appear.
func (k Kind) Unique() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

func (k Kind) rank() int {
	if !k.Appendable() {
		return noRank
	}
	return int(k)
}

// decorate wraps value in the punctuation for the kind.
func (k Kind) decorate(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}
