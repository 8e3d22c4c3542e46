// Package record confines all untyped document-store access to one place.
// A RawRecord is the only shape that crosses the store boundary; everything
// above it works with canonical typed entities.
package record

import (
	"strconv"
	"strings"
	"time"
)

// RawRecord is a closed mapping over the raw key/value pairs of one stored
// document. Callers never range over the underlying map directly; the
// accessors below are the only way values leave it.
type RawRecord struct {
	fields map[string]any
}

// FromMap wraps a raw document in a RawRecord. The map is not copied; the
// store client hands over ownership.
func FromMap(fields map[string]any) RawRecord {
	return RawRecord{fields: fields}
}

// IsZero reports whether the record carries no fields at all.
func (r RawRecord) IsZero() bool {
	return len(r.fields) == 0
}

// Len returns the number of top-level fields.
func (r RawRecord) Len() int {
	return len(r.fields)
}

// Keys returns the top-level field names in unspecified order.
func (r RawRecord) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	return keys
}

// Get returns the value stored under key. Dotted keys traverse nested maps,
// so Get("profile.userType") reaches into the profile sub-document. A present
// key holding nil counts as absent.
func (r RawRecord) Get(key string) (any, bool) {
	if r.fields == nil {
		return nil, false
	}
	if !strings.Contains(key, ".") {
		v, ok := r.fields[key]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
	var cur any = r.fields
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether key resolves to a non-nil value.
func (r RawRecord) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// FindDeep searches for key at any nesting depth, top level first, then
// breadth-first through nested maps. Used for structural role markers that
// legacy writers placed at inconsistent depths.
func (r RawRecord) FindDeep(key string) (any, bool) {
	if r.fields == nil {
		return nil, false
	}
	queue := []map[string]any{r.fields}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
		for _, v := range m {
			if nested, ok := asMap(v); ok {
				queue = append(queue, nested)
			}
		}
	}
	return nil, false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawRecord:
		return m.fields, true
	default:
		return nil, false
	}
}

// String coerces the value under key to a string. Numeric values are not
// stringified; only true string values count.
func (r RawRecord) String(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number coerces the value under key to a float64. Store clients deliver
// JSON numbers as float64 but legacy writers stored several numeric fields
// as strings, so both are accepted.
func (r RawRecord) Number(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	return toNumber(v)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Time coerces the value under key to a time.Time. Accepts time.Time values,
// RFC 3339 strings and bare dates ("2006-01-02").
func (r RawRecord) Time(key string) (time.Time, bool) {
	v, ok := r.Get(key)
	if !ok {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "02-01-2006"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// Slice returns the value under key as a []any.
func (r RawRecord) Slice(key string) ([]any, bool) {
	v, ok := r.Get(key)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// StringSlice returns the value under key as a []string, keeping only the
// string elements of a mixed array.
func (r RawRecord) StringSlice(key string) ([]string, bool) {
	raw, ok := r.Slice(key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Map returns the value under key as a nested RawRecord.
func (r RawRecord) Map(key string) (RawRecord, bool) {
	v, ok := r.Get(key)
	if !ok {
		return RawRecord{}, false
	}
	m, ok := asMap(v)
	if !ok {
		return RawRecord{}, false
	}
	return RawRecord{fields: m}, true
}
