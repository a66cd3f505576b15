package jsonx

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Encode returns the compact JSON representation of v.
//
// Struct fields appear in declaration order and *Document values keep the
// order in which their fields were set. Plain Go maps carry no insertion
// order, so their keys are emitted sorted. HTML characters are written
// literally. Values the encoder cannot represent (channels, functions,
// cyclic pointers) fail with an error matching ErrEncode.
func Encode(v any) (string, error) {
	b, err := marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MustEncode is like Encode but panics on failure.
func MustEncode(v any) string {
	s, err := Encode(v)
	if err != nil {
		panic(fmt.Sprintf("jsonx: %v", err))
	}
	return s
}

func marshal(v any) ([]byte, error) {
	b, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return b, nil
}
