package security

import "strings"

// NormalizeEmail is the single normalization boundary for email addresses.
// Registration and login both pass through it, which keeps lookup
// case-insensitive end-to-end.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
