package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when a document body is not a JSON object
var ErrNotObject = errors.New("document must be a JSON object")

// Object is a JSON object whose members are kept as raw bytes in their
// original order. Replacing one member leaves every other member untouched.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

// ParseObject splits a JSON object into its top-level members
func ParseObject(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing document: unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing document member %q: %w", key, err)
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, err
		}
		obj.Set(key, compact.Bytes())
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if _, err := dec.Token(); err == nil {
		return nil, errors.New("parsing document: trailing data after object")
	}
	return obj, nil
}

// NewObject returns an empty object
func NewObject() *Object {
	return &Object{values: make(map[string]json.RawMessage)}
}

// Get returns the raw member value
func (o *Object) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set replaces a member, appending it when absent
func (o *Object) Set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = append(json.RawMessage(nil), value...)
}

// Keys returns member names in document order
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// MarshalJSON writes the members back in their original order
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Bytes is MarshalJSON without the error; every member is already valid JSON
func (o *Object) Bytes() []byte {
	out, _ := o.MarshalJSON()
	return out
}

// Compact validates data as JSON and strips insignificant whitespace
func Compact(data []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, bytes.TrimSpace(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
