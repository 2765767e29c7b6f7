package request

import (
	"fmt"
	"net/textproto"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Headers is a string-to-string header mapping that remembers insertion
// order. A nil *Headers means no headers were given; it can be read but not
// written, so build a writable one with NewHeaders.
//
// Keys are stored in canonical form ("x-trace" becomes "X-Trace"), the form
// they take on the wire. Keys that differ only in case are the same header.
type Headers struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewHeaders returns an empty header mapping.
func NewHeaders() *Headers {
	return &Headers{m: orderedmap.New[string, string]()}
}

// Set stores value under the canonical form of key. An existing key keeps
// its position and the new value replaces the old one. h must come from
// NewHeaders.
func (h *Headers) Set(key, value string) *Headers {
	h.m.Set(textproto.CanonicalMIMEHeaderKey(key), value)
	return h
}

// Get returns the value stored under key.
func (h *Headers) Get(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	return h.m.Get(textproto.CanonicalMIMEHeaderKey(key))
}

// Len returns the number of headers.
func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return h.m.Len()
}

// Each calls fn for every header in insertion order and stops at the first error.
func (h *Headers) Each(fn func(key, value string) error) error {
	if h == nil {
		return nil
	}
	for pair := h.m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the header names in insertion order.
func (h *Headers) Keys() []string {
	keys := make([]string, 0, h.Len())
	_ = h.Each(func(key, _ string) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}

// ParseHeaderLines builds Headers from "Key: Value" lines, keeping their order.
// An empty slice yields nil so that "no headers" stays absent.
func ParseHeaderLines(lines []string) (*Headers, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	h := NewHeaders()
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("parse header %q: want \"Key: Value\"", line)
		}
		h.Set(key, strings.TrimSpace(value))
	}
	return h, nil
}
