// Package string provides small helpers for normalizing user-entered text.
package string

import "strings"

// TrimStrings trims surrounding whitespace from each value in place.
func TrimStrings(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}

// TrimSlice trims surrounding whitespace from each element in place.
func TrimSlice(ss []string) {
	for i := range ss {
		ss[i] = strings.TrimSpace(ss[i])
	}
}
