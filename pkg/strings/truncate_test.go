package strings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short unchanged", "access_denied", 20, "access_denied"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"cut with ellipsis", "the user denied the request", 15, "the user den..."},
		{"newlines folded", "line one\r\nline two", 40, "line one line two"},
		{"forged log line folded", "denied\nlevel=ERROR msg=fake", 80, "denied level=ERROR msg=fake"},
		{"tabs and runs collapsed", "a\t\t b   c", 20, "a b c"},
		{"unicode cut on runes", "日本語のテキストです", 6, "日本語..."},
		{"tiny maxLen clamped", "abcdefgh", 1, "a..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SingleLine(tt.input, tt.maxLen))
		})
	}
}

func TestForLog(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := ForLog(long)

	assert.Len(t, got, DefaultLogValueMaxLen)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, "short", ForLog("short"))
}
