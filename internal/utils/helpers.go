package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanSnippet strips markup from a vacancy snippet and collapses
// whitespace. Both APIs embed HTML in their text fields: SuperJob ships
// rich text, HH wraps matches in <highlighttext> tags.
func CleanSnippet(snippet string) string {
	if snippet == "" {
		return ""
	}

	// Pad tags so adjacent block elements don't glue their text together;
	// the Fields round-trip collapses the extra spaces again.
	padded := strings.ReplaceAll(snippet, "<", " <")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(padded))
	if err != nil {
		return strings.Join(strings.Fields(snippet), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// TruncateString shortens s to at most length runes, appending "..." when
// anything was cut.
func TruncateString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length <= 3 {
		return string(runes[:length])
	}
	return string(runes[:length-3]) + "..."
}
