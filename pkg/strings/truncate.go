// Package strings holds small helpers for text taken from untrusted input.
package strings

import (
	"strings"
)

// DefaultLogValueMaxLen bounds request-supplied values written to the log.
const DefaultLogValueMaxLen = 120

// MinTruncateLen is the smallest maxLen SingleLine honors; it leaves room for
// one character plus "...".
const MinTruncateLen = 4

// SingleLine collapses all whitespace runs in s (newlines included) into
// single spaces and cuts the result to maxLen runes, ending in "..." when cut.
func SingleLine(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// ForLog is SingleLine with DefaultLogValueMaxLen.
func ForLog(s string) string {
	return SingleLine(s, DefaultLogValueMaxLen)
}
