package normalization

import "strings"

// ParseInputString lowercases and trims user-provided identifiers (emails,
// mode strings). Not used for free-text fields.
func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
