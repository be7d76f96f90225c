// Package strings provides small string helpers shared across modules
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a route prefix like /analyze or /history
// ensures a single leading slash and no trailing slash, panics on blank input
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SQLNullPtr returns nil if ps is nil or points to a blank string, else the dereferenced string.
// Useful for query args where NULL is desired for blanks
func SQLNullPtr(ps *string) any {
	if ps == nil || std.TrimSpace(*ps) == "" {
		return nil
	}
	return *ps
}

// Truncate cuts s to at most n runes, leaving shorter strings untouched
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	b := []rune(s)
	if len(b) <= n {
		return s
	}
	return string(b[:n])
}
