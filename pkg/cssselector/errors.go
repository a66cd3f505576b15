package cssselector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSelector is returned when a nil selector is rendered or combined.
	ErrNilSelector = errors.New("selector cannot be nil")

	// ErrInvalidSelector is returned when a rendered selector does not parse as CSS.
	ErrInvalidSelector = errors.New("invalid css selector")

	// ErrInvalidToken is returned for malformed kind:value or combinator tokens.
	ErrInvalidToken = errors.New("invalid selector token")
)

const (
	orderViolationMessage    = "Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element"
	duplicateFragmentMessage = "Element, id and pseudo-element should not occur more then one time inside the selector"
)

// ErrOrderViolation indicates a fragment was appended after a fragment of a
// later kind.
type ErrOrderViolation struct {
	Last Kind
	Next Kind
}

// Error implements the error interface.
func (e *ErrOrderViolation) Error() string {
	return fmt.Sprintf("%s (%s after %s)", orderViolationMessage, e.Next, e.Last)
}

// NewErrOrderViolation creates an ErrOrderViolation for next following last.
func NewErrOrderViolation(last, next Kind) *ErrOrderViolation {
	return &ErrOrderViolation{Last: last, Next: next}
}

// ErrDuplicateFragment indicates a second element, id or pseudo-element.
type ErrDuplicateFragment struct {
	Kind Kind
}

// Error implements the error interface.
func (e *ErrDuplicateFragment) Error() string {
	return fmt.Sprintf("%s (duplicate %s)", duplicateFragmentMessage, e.Kind)
}

// NewErrDuplicateFragment creates an ErrDuplicateFragment for kind.
func NewErrDuplicateFragment(kind Kind) *ErrDuplicateFragment {
	return &ErrDuplicateFragment{Kind: kind}
}

// ErrUnknownKind indicates a kind that cannot be appended to a selector.
type ErrUnknownKind struct {
	Kind Kind
}

// Error implements the error interface.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("fragment kind %s cannot be appended to a selector", e.Kind)
}

// NewErrUnknownKind creates an ErrUnknownKind for kind.
func NewErrUnknownKind(kind Kind) *ErrUnknownKind {
	return &ErrUnknownKind{Kind: kind}
}

// IsOrderViolationError checks if the error is an ErrOrderViolation.
func IsOrderViolationError(err error) bool {
	var e *ErrOrderViolation
	return errors.As(err, &e)
}

// IsDuplicateFragmentError checks if the error is an ErrDuplicateFragment.
func IsDuplicateFragmentError(err error) bool {
	var e *ErrDuplicateFragment
	return errors.As(err, &e)
}

// IsUnknownKindError checks if the error is an ErrUnknownKind.
func IsUnknownKindError(err error) bool {
	var e *ErrUnknownKind
	return errors.As(err, &e)
}
