package request

import "rawreq/rule"

// Headers is an ordered collection of header fields with unique names.
// Setting an existing name overwrites its value in place, so serialization
// order is insertion order and identical configurations serialize to
// identical bytes.
type Headers struct{ fields []Field }

// Get assumes the field is a singleton field and returns its value.
func (h *Headers) Get(key string) (value string, ok bool) {
	key = h.canonical(key)
	for _, f := range h.fields {
		if f.Name == key {
			return f.Value, true
		}
	}
	return "", false
}

// Set overwrites the existing value of key instead of appending to it.
// A field set for the first time goes to the end of the collection.
func (h *Headers) Set(key, value string) {
	key = h.canonical(key)
	for i, f := range h.fields {
		if f.Name == key {
			h.fields[i].Value = value
			return
		}
	}
	h.fields = append(h.fields, Field{Name: key, Value: value})
}

func (h *Headers) Del(key string) {
	key = h.canonical(key)
	for i, f := range h.fields {
		if f.Name == key {
			h.fields = append(h.fields[:i], h.fields[i+1:]...)
			return
		}
	}
}

func (h *Headers) Len() int { return len(h.fields) }

// Fields returns a copy of the fields in serialization order.
func (h *Headers) Fields() []Field {
	clone := make([]Field, len(h.fields))
	copy(clone, h.fields)
	return clone
}

func (h *Headers) canonical(s string) string {
	if rule.IsValidToken(s) {
		s = toCanonicalFieldName(s)
	}
	return s
}

// This only works for valid token.
func toCanonicalFieldName(s string) string {
	const capitalDiff = 'a' - 'A'
	b := []byte(s)
	upper := true
	for i, c := range b {
		if upper && 'a' <= c && c <= 'z' {
			c -= capitalDiff
		} else if !upper && 'A' <= c && c <= 'Z' {
			c += capitalDiff
		}
		b[i] = c
		upper = c == '-'
	}
	return string(b)
}
