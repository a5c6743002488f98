package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lower-cases and trims an email address. Both stores are
// keyed by the normalized form, so every store boundary goes through here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the address has a standard single-@ shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// FormatAreas turns a comma-separated snake_case area list into a
// human-readable one, e.g. "floral_design,music" -> "Floral design, Music".
func FormatAreas(areas string) string {
	parts := strings.Split(areas, ",")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "_", " ")
		if part != "" {
			part = strings.ToUpper(part[:1]) + part[1:]
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}
