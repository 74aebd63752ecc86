package application

import "strings"

// SplitList splits a comma-delimited list and trims every token. A blank string is an
// empty list; empty tokens inside a non-blank list are kept so validation can reject them.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
