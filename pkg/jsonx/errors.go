package jsonx

import "errors"

var (
	// ErrParse is returned when text is not well-formed JSON.
	ErrParse = errors.New("malformed JSON text")

	// ErrEncode is returned when a value cannot be represented as JSON.
	ErrEncode = errors.New("failed to encode value as JSON")

	// ErrEmptyKey is returned when setting or deleting a field with an empty name.
	ErrEmptyKey = errors.New("field name cannot be empty")

	// ErrNotObject is returned when a field operation targets a document whose
	// top-level value is not a JSON object.
	ErrNotObject = errors.New("document is not a JSON object")
)
