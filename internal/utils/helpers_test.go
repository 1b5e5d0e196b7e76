package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSnippet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "Опыт работы от 3 лет",
			expected: "Опыт работы от 3 лет",
		},
		{
			name:     "hh highlight tags stripped",
			input:    "Знание <highlighttext>Python</highlighttext> и SQL",
			expected: "Знание Python и SQL",
		},
		{
			name:     "superjob rich text stripped",
			input:    "<p>Требования:</p><ul><li>Go</li><li>Docker</li></ul>",
			expected: "Требования: Go Docker",
		},
		{
			name:     "whitespace collapsed",
			input:    "  a \n\t b   c ",
			expected: "a b c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanSnippet(tt.input))
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		length   int
		expected string
	}{
		{
			name:     "shorter than limit",
			input:    "Go",
			length:   10,
			expected: "Go",
		},
		{
			name:     "exactly at limit",
			input:    "Golang",
			length:   6,
			expected: "Golang",
		},
		{
			name:     "cut with ellipsis",
			input:    "Senior Backend Engineer",
			length:   10,
			expected: "Senior ...",
		},
		{
			name:     "multibyte runes",
			input:    "Программист",
			length:   7,
			expected: "Прог...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateString(tt.input, tt.length))
		})
	}
}
