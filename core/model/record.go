package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is an ordered mapping from field name to scalar value.
// Field order is insertion order; setting an existing field updates the value
// in place without changing its position. Records are mutated during
// default hydration and type casting, so they are passed by pointer.
type Record struct {
	fields []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordFromMap builds a record from a plain map. Keys are sorted to keep the
// field order deterministic, since Go maps have no iteration order.
func RecordFromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// Set assigns a value. New fields are appended to the field order.
func (r *Record) Set(field string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[field]; !exists {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Get returns the value for a field and whether the field is present.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Has reports whether the field is present, even with a nil value.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Delete removes a field and its position in the order.
func (r *Record) Delete(field string) {
	if _, ok := r.values[field]; !ok {
		return
	}
	delete(r.values, field)
	for i, f := range r.fields {
		if f == field {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in order. The returned slice is a copy.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Map returns the record as a plain map. The returned map is a copy; field
// order is lost.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep-enough copy: field order and values are copied, scalar
// values are shared (they are immutable).
func (r *Record) Clone() *Record {
	c := &Record{
		fields: make([]string, len(r.fields)),
		values: make(map[string]any, len(r.values)),
	}
	copy(c.fields, r.fields)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// MarshalJSON encodes the record as a JSON object preserving field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[f])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving the key order from the
// document, which map-based decoding would lose.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	r.fields = nil
	r.values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		val, err := decodeScalar(raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		r.Set(key, val)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeScalar decodes a raw JSON value into a scalar: string, float64, bool
// or nil. Numbers come through as float64 to match what the store drivers
// hand back. Nested objects and arrays are kept as their decoded any form.
func decodeScalar(raw json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
