// Package jsonx converts Go values to JSON text and JSON text back into
// documents that borrow their behavior from a caller-supplied method set.
//
// # Encoding
//
// Encode produces compact JSON with the same shape JSON.stringify would give:
// no indentation, no trailing newline and no HTML escaping.
//
//	s, _ := jsonx.Encode([]int{1, 2, 3}) // "[1,2,3]"
//
// Key order follows the order in which keys were set. Struct fields are
// emitted in declaration order. Go maps have no insertion order, so use a
// Document when the order of ad-hoc keys matters:
//
//	doc := jsonx.NewDocument()
//	_ = doc.Set("width", 10)
//	_ = doc.Set("height", 20)
//	s, _ := jsonx.Encode(doc) // {"width":10,"height":20}
//
// # Decoding
//
// Decode parses text into a Document and wraps it together with a behavior
// set in an Object. The behavior set is usually a stateless struct whose
// methods take a field source:
//
//	obj, err := jsonx.Decode(shape.RectanglePrototype{}, `{"width":10,"height":20}`)
//	if errors.Is(err, jsonx.ErrParse) {
//		// malformed input
//	}
//	obj.Behavior().Area(obj) // 200
//	obj.Keys()               // [width height]
//
// Every top-level field stays available on the object, including fields the
// behavior set never reads. Into copies the fields into a typed value.
//
// # Libraries
//
// Encoding and typed decoding use github.com/goccy/go-json. Field access and
// ordered updates use github.com/tidwall/gjson and github.com/tidwall/sjson
// on the raw text, which is what preserves insertion order.
//
// # Error Handling
//
//   - ErrParse     - text is not well-formed JSON.
//   - ErrEncode    - value cannot be represented as JSON.
//   - ErrEmptyKey  - field name is empty.
//   - ErrNotObject - field operation on a non-object document.
package jsonx
