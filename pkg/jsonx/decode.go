package jsonx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Object is a decoded JSON document bound to a behavior set.
//
// The document's fields are reachable through the embedded *Document, and the
// behavior set is whatever the caller passed to Decode. Behavior methods
// receive the object itself as their field source, e.g.
//
//	obj.Behavior().Area(obj)
type Object[B any] struct {
	*Document
	behavior B
}

// Behavior returns the behavior set the object was decoded with.
func (o *Object[B]) Behavior() B {
	return o.behavior
}

// Bind attaches behavior to an existing document without copying it.
func Bind[B any](behavior B, doc *Document) *Object[B] {
	if doc == nil {
		doc = NewDocument()
	}
	return &Object[B]{Document: doc, behavior: behavior}
}

// Decode parses text and binds the resulting fields to behavior.
// Any well-formed JSON value is accepted; field accessors only see data when
// the top-level value is an object. Repeated field names, at any depth,
// resolve to the last value, positioned where the name first appeared.
// Malformed text fails with an error matching ErrParse.
func Decode[B any](behavior B, text string) (*Object[B], error) {
	raw := []byte(text)
	if !gjson.ValidBytes(raw) {
		return nil, parseError(raw)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, bytes.TrimSpace(raw)); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return Bind(behavior, &Document{raw: dedupe(compacted.Bytes())}), nil
}

// MustDecode is like Decode but panics on failure.
func MustDecode[B any](behavior B, text string) *Object[B] {
	obj, err := Decode(behavior, text)
	if err != nil {
		panic(fmt.Sprintf("jsonx: %v", err))
	}
	return obj
}

// parseError builds an ErrParse error carrying the decoder's *json.SyntaxError
// when one is available.
func parseError(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.Join(ErrParse, err)
	}
	return ErrParse
}
