// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// listSeparator joins multi-valued fields into the single string the service
// reads as an OR-list.
const listSeparator = ", "

// fieldSet is the flat wire form of one request: an ordered mapping from
// field name to value. Parameter groups append to it in a fixed order; a key
// already present is kept, so the first group to set it wins.
type fieldSet struct {
	keys   []string
	values map[string]any
}

func newFieldSet() *fieldSet {
	return &fieldSet{values: make(map[string]any)}
}

func (f *fieldSet) set(key string, value any) {
	if _, ok := f.values[key]; ok {
		return
	}
	f.keys = append(f.keys, key)
	f.values[key] = value
}

// addString adds a parameter only if non-empty
func (f *fieldSet) addString(key, value string) {
	if value != "" {
		f.set(key, value)
	}
}

// addList joins a multi-valued field. A nil or empty slice is absent; elements
// are not filtered, so [""] still produces a key.
func (f *fieldSet) addList(key string, values []string) {
	if len(values) > 0 {
		f.set(key, strings.Join(values, listSeparator))
	}
}

// addInt adds an integer parameter only if non-zero
func (f *fieldSet) addInt(key string, value int) {
	if value != 0 {
		f.set(key, value)
	}
}

func (f *fieldSet) addBool(key string, value *bool) {
	if value != nil {
		f.set(key, *value)
	}
}

// addAny adds a structured value (a search query or a nested list). nil is absent.
func (f *fieldSet) addAny(key string, value any) {
	if value != nil {
		f.set(key, value)
	}
}

func (f *fieldSet) has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *fieldSet) len() int { return len(f.keys) }

// query encodes the set as URL query values. Structured values are encoded as
// JSON strings.
func (f *fieldSet) query() (url.Values, error) {
	q := make(url.Values, len(f.keys))
	for _, key := range f.keys {
		s, err := queryValue(f.values[key])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		q.Set(key, s)
	}
	return q, nil
}

func queryValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case json.RawMessage:
		return string(val), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// MarshalJSON writes the set as a flat JSON object in insertion order.
func (f *fieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.values[key])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Bool returns a pointer to v, for the optional boolean parameters.
func Bool(v bool) *bool { return &v }
