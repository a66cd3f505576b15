// Package cssselector provides a fluent builder for CSS selectors that
// enforces fragment ordering and uniqueness as the selector is assembled.
//
// A selector is built from typed fragments. Each fragment kind has its own
// decoration and a fixed position in the ordering:
//
//	element          div
//	id               #main
//	class            .item
//	attribute        [href$=".png"]
//	pseudo-class     :hover
//	pseudo-element   ::before
//
// # Usage
//
// Every factory function starts a new, independent selector. Methods of the
// same names append to it and return it for chaining:
//
//	s := cssselector.Element("a").ID("b").Class("c")
//	text, err := s.Build() // "a#b.c"
//
// Two selectors are joined with Combine. The result is terminal: it can be
// rendered or combined again but not extended with more fragments.
//
//	c := cssselector.Combine(cssselector.Element("div"), cssselector.Child, cssselector.ID("child"))
//	c.String() // "div > #child"
//
// # Validation
//
// Before a fragment is appended, two checks run in order:
//
//   - Ordering: a fragment may not follow a fragment of a later kind.
//     Equal kinds may follow each other.
//   - Uniqueness: element, id and pseudo-element may appear at most once.
//     Classes, attributes and pseudo-classes may repeat freely.
//
// A rejected append never changes the selector. Chained calls record the
// first failure and ignore every call after it, so a chain is checked once
// at the end:
//
//	s := cssselector.Class("a").ID("b")
//	_, err := s.Build()
//	cssselector.IsOrderViolationError(err) // true
//	s.Len()                                // 1
//
// Add performs the same checks for a single fragment and returns the error
// directly.
//
// # Matching
//
// Compile parses a rendered selector with github.com/andybalholm/cascadia and
// Query runs it against an HTML document parsed by
// github.com/PuerkitoBio/goquery:
//
//	sel, err := cssselector.Query(cssselector.Element("p").Class("note"), strings.NewReader(page))
//	if err == nil {
//		fmt.Println(sel.Length())
//	}
//
// # Error Handling
//
// Typed errors can be checked with the Is helpers or errors.As:
//
//   - *ErrOrderViolation    - fragment appended out of order.
//   - *ErrDuplicateFragment - second element, id or pseudo-element.
//   - *ErrUnknownKind       - kind that cannot be appended.
//
// Sentinel errors: ErrNilSelector, ErrInvalidSelector, ErrInvalidToken.
//
// # Thread Safety
//
// A Selector is owned by the code building it and must not be mutated from
// several goroutines at once. Rendering does not mutate and may be repeated.
package cssselector
