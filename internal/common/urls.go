package common

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateBaseURL sanitizes a --base-url value and rejects anything that is
// not a plain http(s) URL with a host. Returns the cleaned URL.
func ValidateBaseURL(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimRight(cleaned, "/")
	if cleaned == "" {
		return "", fmt.Errorf("base URL is empty")
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", raw)
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("base URL %q has a malformed host", raw)
	}
	return cleaned, nil
}

// SplitIDs parses a comma-separated --ids value into a trimmed, de-duplicated
// list, preserving order.
func SplitIDs(raw string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
