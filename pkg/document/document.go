package document

import "strconv"

// Value is the tagged variant stored at each document field: Scalar,
// *Document, or List.
type Value interface {
	value()
}

// Kind identifies the source type of a Scalar.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
)

// Scalar is a leaf value. Numbers keep their source text so integer-ness
// survives decoding; coercion happens in the accessors.
type Scalar struct {
	kind Kind
	text string
	b    bool
}

func (Scalar) value() {}

// StringValue wraps a string scalar.
func StringValue(s string) Scalar {
	return Scalar{kind: KindString, text: s}
}

// NumberValue wraps a numeric scalar given its source text, e.g. "19.99".
func NumberValue(text string) Scalar {
	return Scalar{kind: KindNumber, text: text}
}

// BoolValue wraps a boolean scalar.
func BoolValue(b bool) Scalar {
	return Scalar{kind: KindBoolean, b: b}
}

// NullValue wraps an explicit null.
func NullValue() Scalar {
	return Scalar{kind: KindNull}
}

// Kind returns the scalar's source type.
func (s Scalar) Kind() Kind {
	return s.kind
}

// Raw returns the scalar's display form: the source text for strings and
// numbers, "true"/"false" for booleans, "null" for null.
func (s Scalar) Raw() string {
	switch s.kind {
	case KindBoolean:
		return strconv.FormatBool(s.b)
	case KindNull:
		return "null"
	default:
		return s.text
	}
}

// String returns the scalar as a string. Only string scalars coerce.
func (s Scalar) String() (string, bool) {
	if s.kind != KindString {
		return "", false
	}
	return s.text, true
}

// Float coerces the scalar to a float64. Numbers always coerce; strings
// coerce when they parse as a number, which keeps XML text content and
// JSON numbers interchangeable.
func (s Scalar) Float() (float64, bool) {
	switch s.kind {
	case KindNumber, KindString:
		f, err := strconv.ParseFloat(s.text, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int coerces the scalar to an int64. A number with a fractional source
// form ("2.0") does not coerce, mirroring a strict integer type check.
func (s Scalar) Int() (int64, bool) {
	switch s.kind {
	case KindNumber, KindString:
		n, err := strconv.ParseInt(s.text, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool coerces the scalar to a bool. Strings coerce through
// strconv.ParseBool, so XML "true"/"false" behaves like JSON booleans.
func (s Scalar) Bool() (bool, bool) {
	switch s.kind {
	case KindBoolean:
		return s.b, true
	case KindString:
		b, err := strconv.ParseBool(s.text)
		return b, err == nil
	default:
		return false, false
	}
}

// List is an ordered sequence of values produced by repeated sibling
// elements or JSON arrays. Order matches source order.
type List []Value

func (List) value() {}

// Documents returns the list elements that are nested documents, in order.
func (l List) Documents() []*Document {
	var out []*Document
	for _, v := range l {
		if d, ok := v.(*Document); ok {
			out = append(out, d)
		}
	}
	return out
}

// Document is an insertion-ordered mapping from field name to Value.
type Document struct {
	keys []string
	vals map[string]Value
}

func (*Document) value() {}

// New returns an empty document.
func New() *Document {
	return &Document{vals: make(map[string]Value)}
}

// Set stores a value under key. An existing key keeps its original
// position; a new key is appended.
func (d *Document) Set(key string, v Value) {
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the field names in insertion order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len returns the number of fields.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Child walks nested documents by field name and returns the document at
// the end of the path.
func (d *Document) Child(keys ...string) (*Document, bool) {
	cur := d
	for _, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return nil, false
		}
		next, ok := v.(*Document)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Scalar returns the scalar at the dotted path given by keys.
func (d *Document) Scalar(keys ...string) (Scalar, bool) {
	if len(keys) == 0 {
		return Scalar{}, false
	}
	parent := d
	if len(keys) > 1 {
		var ok bool
		parent, ok = d.Child(keys[:len(keys)-1]...)
		if !ok {
			return Scalar{}, false
		}
	}
	v, ok := parent.Get(keys[len(keys)-1])
	if !ok {
		return Scalar{}, false
	}
	s, ok := v.(Scalar)
	return s, ok
}

// String returns the string scalar at the path.
func (d *Document) String(keys ...string) (string, bool) {
	s, ok := d.Scalar(keys...)
	if !ok {
		return "", false
	}
	return s.String()
}

// Float returns the float-coerced scalar at the path.
func (d *Document) Float(keys ...string) (float64, bool) {
	s, ok := d.Scalar(keys...)
	if !ok {
		return 0, false
	}
	return s.Float()
}

// Int returns the int-coerced scalar at the path.
func (d *Document) Int(keys ...string) (int64, bool) {
	s, ok := d.Scalar(keys...)
	if !ok {
		return 0, false
	}
	return s.Int()
}

// Bool returns the bool-coerced scalar at the path.
func (d *Document) Bool(keys ...string) (bool, bool) {
	s, ok := d.Scalar(keys...)
	if !ok {
		return false, false
	}
	return s.Bool()
}

// List returns the list stored at the path.
func (d *Document) List(keys ...string) (List, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	parent := d
	if len(keys) > 1 {
		var ok bool
		parent, ok = d.Child(keys[:len(keys)-1]...)
		if !ok {
			return nil, false
		}
	}
	v, ok := parent.Get(keys[len(keys)-1])
	if !ok {
		return nil, false
	}
	l, ok := v.(List)
	return l, ok
}
