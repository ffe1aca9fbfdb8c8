// Package stringslice has small helpers for slices of string-like values,
// such as enum families and lists of names.
package stringslice

// Has returns true if a given slice has the provided value s.
func Has[S ~string](slice []S, s S) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// Add returns a slice with s appended if it is not already found in the provided slice.
func Add[S ~string](slice []S, s S) []S {
	if Has(slice, s) {
		return slice
	}
	return append(slice, s)
}

// Strings converts a slice of string-like values to plain strings.
func Strings[S ~string](slice []S) []string {
	out := make([]string, len(slice))
	for i, item := range slice {
		out[i] = string(item)
	}
	return out
}
