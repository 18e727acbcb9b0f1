package domain

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// ValidEmail reports whether s looks like user@host.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is an optional leading + followed by 10-15 digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
