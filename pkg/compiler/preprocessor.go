package compiler

import "strings"

// SplitLines breaks raw source text into its lines. Windows line endings are
// normalized so downstream matching never sees a trailing \r.
func SplitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(src, "\n")
}

// IsBlank reports whether the source as a whole contains nothing but
// whitespace. The front ends use it to reject empty input before invoking the
// translator; the translator itself accepts anything.
func IsBlank(src string) bool {
	return strings.TrimSpace(src) == ""
}
