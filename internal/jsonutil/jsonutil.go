// Package jsonutil provides shared utilities for JSON parsing patterns:
// error handling, type conversion, and order-preserving value extraction.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotContainer is returned when a value is neither a JSON array nor object.
var ErrNotContainer = errors.New("json value is not an array or object")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a single JSON value from r into v and wraps any
// error with the provided context message.
func DecodeWithContext(r io.Reader, v interface{}, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ToString converts an interface{} value to a string representation.
// Floats use plain decimal notation with no trailing zeros, never exponents.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Kind reports the first significant byte of a raw JSON value:
// '[' for arrays, '{' for objects, 0 for empty input, otherwise the byte itself.
func Kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// ContainerValues returns the elements of a JSON array, or the member values
// of a JSON object in document order, each converted with ToString.
// Returns ErrNotContainer for any other kind of value.
func ContainerValues(raw json.RawMessage) ([]string, error) {
	switch Kind(raw) {
	case '[':
		var items []interface{}
		if err := UnmarshalWithContext(raw, &items, "decode array"); err != nil {
			return nil, err
		}
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = ToString(it)
		}
		return out, nil
	case '{':
		return objectValues(raw)
	default:
		return nil, ErrNotContainer
	}
}

// objectValues walks the object token by token; map decoding would lose member order.
func objectValues(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	var out []string
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("decode object key: %w", err)
		}
		var v interface{}
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode object value: %w", err)
		}
		out = append(out, ToString(v))
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return out, nil
}
