package util

import "strings"

// SplitCSV splits a comma-joined string into its non-empty, trimmed parts.
// The trainer update route still receives phones and times this way.
func SplitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
