// Package htmltext strips markup from HTML fragments embedded in feed
// payloads, leaving normalized plain text.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip removes all tags from an HTML fragment and normalizes whitespace.
// Plain input passes through unchanged apart from normalization.
func Strip(fragment string) (string, error) {
	if !strings.ContainsRune(fragment, '<') {
		return normalize(fragment), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return normalize(doc.Text()), nil
}

// normalize collapses all whitespace runs, including newlines, to single
// spaces. strings.Fields has no line-length limit, so arbitrarily long
// section text passes through intact.
func normalize(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
