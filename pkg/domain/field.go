package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
	"time"
)

// DateLayout is the canonical wire form of date values.
const DateLayout = "2006-01-02"

// ValueKind tags the variant held by a FieldValue.
type ValueKind uint8

const (
	ValueText ValueKind = iota
	ValueNumber
	ValueDate
	ValueBool
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueDate:
		return "date"
	case ValueBool:
		return "boolean"
	default:
		return "text"
	}
}

// FieldValue is a tagged text, number, date or boolean value.
// The zero value is empty text.
type FieldValue struct {
	kind ValueKind
	str  string // text, or the canonical date
	num  float64
	flag bool
}

// Text returns a text value.
func Text(s string) FieldValue { return FieldValue{kind: ValueText, str: s} }

// Number returns a numeric value.
func Number(n float64) FieldValue { return FieldValue{kind: ValueNumber, num: n} }

// Bool returns a boolean value.
func Bool(b bool) FieldValue { return FieldValue{kind: ValueBool, flag: b} }

// Date returns a date value. Only the calendar day of t is kept.
func Date(t time.Time) FieldValue {
	return FieldValue{kind: ValueDate, str: t.Format(DateLayout)}
}

// ParseDate parses a YYYY-MM-DD string into a date value.
func ParseDate(s string) (FieldValue, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return FieldValue{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// Kind returns the variant tag.
func (v FieldValue) Kind() ValueKind { return v.kind }

// String returns the display form of the value.
func (v FieldValue) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

// AsNumber returns the numeric payload if v is a number.
func (v FieldValue) AsNumber() (float64, bool) {
	return v.num, v.kind == ValueNumber
}

// AsBool returns the boolean payload if v is a boolean.
func (v FieldValue) AsBool() (bool, bool) {
	return v.flag, v.kind == ValueBool
}

// AsTime returns the date payload (UTC midnight) if v is a date.
func (v FieldValue) AsTime() (time.Time, bool) {
	if v.kind != ValueDate {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, v.str)
	return t, err == nil
}

// IsEmpty reports whether v is empty text.
func (v FieldValue) IsEmpty() bool {
	return v.kind == ValueText && v.str == ""
}

// Interface returns the value as a plain Go scalar (string, float64 or bool).
func (v FieldValue) Interface() any {
	switch v.kind {
	case ValueNumber:
		return v.num
	case ValueBool:
		return v.flag
	default:
		return v.str
	}
}

// MarshalJSON encodes the value as a bare JSON scalar.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a JSON scalar. Strings always decode as text: a date
// and the text of its canonical form share one wire form, so dates are typed
// again from the field definition where they are displayed or validated.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	val, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// ValueOf converts a decoded scalar into a FieldValue.
func ValueOf(raw any) (FieldValue, error) {
	switch x := raw.(type) {
	case nil:
		return Text(""), nil
	case FieldValue:
		return x, nil
	case string:
		return Text(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return FieldValue{}, fmt.Errorf("invalid number %q: %w", x, err)
		}
		return Number(n), nil
	case time.Time:
		return Date(x), nil
	default:
		return FieldValue{}, fmt.Errorf("unsupported field value type %T", raw)
	}
}

// Equal reports whether v and o are the same value. A date equals the text
// of its canonical form, since both are stored the same way.
func (v FieldValue) Equal(o FieldValue) bool {
	if v == o {
		return true
	}
	return wireText(v) && wireText(o) && v.str == o.str
}

func wireText(v FieldValue) bool {
	return v.kind == ValueText || v.kind == ValueDate
}

// FieldData is an insertion-ordered mapping from field id to value.
// The zero value is an empty bag ready to use.
type FieldData struct {
	keys   []string
	values map[string]FieldValue
}

// FieldsOf builds a bag from entries, in order.
func FieldsOf(entries ...Field) FieldData {
	var d FieldData
	for _, e := range entries {
		d.Set(e.ID, e.Value)
	}
	return d
}

// Field is one id/value entry.
type Field struct {
	ID    string
	Value FieldValue
}

// Set stores v under id. New ids are appended; existing ids keep their position.
func (d *FieldData) Set(id string, v FieldValue) {
	if d.values == nil {
		d.values = make(map[string]FieldValue)
	}
	if _, ok := d.values[id]; !ok {
		d.keys = append(d.keys, id)
	}
	d.values[id] = v
}

// Get returns the value stored under id.
func (d FieldData) Get(id string) (FieldValue, bool) {
	v, ok := d.values[id]
	return v, ok
}

// Len returns the number of entries.
func (d FieldData) Len() int { return len(d.keys) }

// Keys returns the ids in insertion order.
func (d FieldData) Keys() []string {
	if len(d.keys) == 0 {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// All iterates entries in insertion order.
func (d FieldData) All() iter.Seq2[string, FieldValue] {
	return func(yield func(string, FieldValue) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Cloning an empty bag yields the zero value.
func (d FieldData) Clone() FieldData {
	if len(d.keys) == 0 {
		return FieldData{}
	}
	out := FieldData{
		keys:   make([]string, len(d.keys)),
		values: make(map[string]FieldValue, len(d.values)),
	}
	copy(out.keys, d.keys)
	for k, v := range d.values {
		out.values[k] = v
	}
	return out
}

// Equal reports whether both bags hold the same entries in the same order.
func (d FieldData) Equal(o FieldData) bool {
	if len(d.keys) != len(o.keys) {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k || !d.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the bag as a JSON object preserving insertion order.
func (d FieldData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := d.values[k].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document order of keys.
func (d *FieldData) UnmarshalJSON(data []byte) error {
	*d = FieldData{}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("field data: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("field data: expected key, got %v", tok)
		}
		var v FieldValue
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		d.Set(key, v)
	}
	_, err = dec.Token()
	return err
}
