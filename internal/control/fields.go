package control

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Fields is an ordered set of control fields keyed by field name.
//
// Keys are unique. Setting an existing key replaces its value and keeps its
// position. The insertion order is the tie-break Format uses for fields that
// have no place in FieldOrder. The zero value is an empty, usable Fields.
type Fields struct {
	keys   []string
	values map[string]Value
}

// Field is a single key/value pair as returned by SortedFields.
type Field struct {
	Key   string
	Value Value
}

// NewFields returns an empty Fields.
func NewFields() *Fields {
	return &Fields{values: make(map[string]Value)}
}

// Set assigns v to key.
func (f *Fields) Set(key string, v Value) {
	if f.values == nil {
		f.values = make(map[string]Value)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// Get returns the value stored under key.
func (f *Fields) Get(key string) (Value, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (f *Fields) Delete(key string) {
	if _, ok := f.values[key]; !ok {
		return
	}
	delete(f.values, key)
	f.keys = slices.DeleteFunc(f.keys, func(k string) bool { return k == key })
}

// Keys returns the field names in insertion order.
func (f *Fields) Keys() []string {
	return slices.Clone(f.keys)
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	return len(f.keys)
}

// Map returns an unordered copy of the fields.
func (f *Fields) Map() map[string]Value {
	return maps.Clone(f.values)
}

// Clone returns an independent copy of f.
func (f *Fields) Clone() *Fields {
	c := &Fields{
		keys:   slices.Clone(f.keys),
		values: make(map[string]Value, len(f.values)),
	}
	for k, v := range f.values {
		if v.list {
			v.items = slices.Clone(v.items)
		}
		c.values[k] = v
	}
	return c
}

// Text returns the value of key as a string, or "" when it is missing.
// Lists are joined with ", ".
func (f *Fields) Text(key string) string {
	v, ok := f.values[key]
	if !ok {
		return ""
	}
	return v.String()
}

// List returns the value of key as list elements. Text values are split on
// commas. A missing key yields nil.
func (f *Fields) List(key string) []string {
	v, ok := f.values[key]
	if !ok {
		return nil
	}
	if v.list {
		return slices.Clone(v.items)
	}
	return splitList(v.text)
}

// MarshalJSON encodes the fields as a JSON object in write order.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range SortedFields(f) {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
