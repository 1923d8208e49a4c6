package validators

import (
	"maps"
	"slices"
	"strings"
)

// Violations maps a field name to a human-readable message describing why the
// field is invalid. An empty Violations means the value is valid.
type Violations map[string]string

// Add records msg for field. Several messages for the same field are joined
// with "; " so that none of them is lost.
func (v Violations) Add(field, msg string) {
	if prev, ok := v[field]; ok {
		v[field] = prev + "; " + msg
		return
	}
	v[field] = msg
}

// Error implements error. Fields are listed in lexical order so the message is
// stable across calls.
func (v Violations) Error() string {
	fields := slices.Sorted(maps.Keys(v))

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Err returns v as an error, or nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
