package jsonx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var emptyObject = []byte("{}")

// Document is a JSON value whose top-level object fields keep insertion order.
// The zero value is an empty object.
type Document struct {
	raw []byte
}

// NewDocument creates an empty JSON object.
func NewDocument() *Document {
	return &Document{raw: append([]byte(nil), emptyObject...)}
}

// Set assigns value to the top-level field key. New fields are appended after
// existing ones; replacing a field keeps its position.
func (d *Document) Set(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !d.IsObject() {
		return ErrNotObject
	}

	encoded, err := marshal(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	updated, err := sjson.SetRawBytes(d.data(), fieldPath(key), encoded)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	d.raw = updated
	return nil
}

// SetRaw assigns already encoded JSON to the top-level field key. The text is
// validated and compacted before it is stored.
func (d *Document) SetRaw(key, raw string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !d.IsObject() {
		return ErrNotObject
	}
	if !gjson.Valid(raw) {
		return fmt.Errorf("set %q: %w", key, parseError([]byte(raw)))
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, []byte(strings.TrimSpace(raw))); err != nil {
		return fmt.Errorf("set %q: %w", key, errors.Join(ErrParse, err))
	}

	updated, err := sjson.SetRawBytes(d.data(), fieldPath(key), compacted.Bytes())
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	d.raw = updated
	return nil
}

// Delete removes the top-level field key. Deleting a missing field is a no-op.
func (d *Document) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !d.IsObject() {
		return ErrNotObject
	}

	updated, err := sjson.DeleteBytes(d.data(), fieldPath(key))
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	d.raw = updated
	return nil
}

// Get returns the raw result for the top-level field key.
func (d *Document) Get(key string) gjson.Result {
	if key == "" || !d.IsObject() {
		return gjson.Result{}
	}
	return gjson.GetBytes(d.data(), fieldPath(key))
}

func (d *Document) Has(key string) bool {
	return d.Get(key).Exists()
}

// Float returns the numeric value of key. Numeric strings are parsed, booleans
// read as 0 or 1 and anything else reads as zero.
func (d *Document) Float(key string) float64 {
	return d.Get(key).Float()
}

func (d *Document) String(key string) string {
	return d.Get(key).String()
}

// Keys lists top-level field names in document order.
func (d *Document) Keys() []string {
	root := gjson.ParseBytes(d.data())
	if !root.IsObject() {
		return nil
	}
	var keys []string
	root.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

func (d *Document) Len() int {
	return len(d.Keys())
}

// IsObject reports whether the top-level value is a JSON object.
func (d *Document) IsObject() bool {
	return gjson.ParseBytes(d.data()).IsObject()
}

// Raw returns the underlying JSON text. The slice must not be modified.
func (d *Document) Raw() []byte {
	return d.data()
}

// Into unmarshals the document into v.
func (d *Document) Into(v any) error {
	if err := json.Unmarshal(d.data(), v); err != nil {
		return errors.Join(ErrParse, err)
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.data(), nil
}

func (d *Document) data() []byte {
	if d == nil || len(d.raw) == 0 {
		return emptyObject
	}
	return d.raw
}

// fieldPath escapes key so gjson and sjson address it literally.
func fieldPath(key string) string {
	p := gjson.Escape(key)
	if strings.HasPrefix(p, ":") {
		p = `\` + p
	}
	return p
}

// dedupe collapses repeated fields at every depth: the first occurrence keeps
// its position and the last occurrence supplies the value. raw must be compact.
func dedupe(raw []byte) []byte {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() && !root.IsArray() {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	writeDeduped(&b, root)
	return []byte(b.String())
}

func writeDeduped(b *strings.Builder, v gjson.Result) {
	switch {
	case v.IsObject():
		type field struct {
			rawKey string
			value  gjson.Result
		}
		var order []string
		fields := make(map[string]*field)
		v.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if f, seen := fields[k]; seen {
				f.value = value
				return true
			}
			order = append(order, k)
			fields[k] = &field{rawKey: key.Raw, value: value}
			return true
		})

		b.WriteByte('{')
		for i, k := range order {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fields[k].rawKey)
			b.WriteByte(':')
			writeDeduped(b, fields[k].value)
		}
		b.WriteByte('}')
	case v.IsArray():
		b.WriteByte('[')
		i := 0
		v.ForEach(func(_, value gjson.Result) bool {
			if i > 0 {
				b.WriteByte(',')
			}
			writeDeduped(b, value)
			i++
			return true
		})
		b.WriteByte(']')
	default:
		b.WriteString(v.Raw)
	}
}
