package models

import (
	"fmt"
	"time"
)

// The feed API emits two date layouts: publication dates separate the time
// fields with semicolons, modification dates with colons.
const (
	PubDateLayout = "2006-01-02-15;04;05"
	ModDateLayout = "2006-01-02-15:04:05"
)

// ParsePubDate parses a publication date string from the feed.
func ParsePubDate(s string) (time.Time, error) {
	t, err := time.Parse(PubDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publication date %q: %w", s, err)
	}
	return t, nil
}

// ParseModDate parses a modification date string from the feed.
func ParseModDate(s string) (time.Time, error) {
	t, err := time.Parse(ModDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid modification date %q: %w", s, err)
	}
	return t, nil
}
