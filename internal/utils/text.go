package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	addressNumberRegex = regexp.MustCompile(`^\d+[a-zA-Z]?$`)
)

// SanitizeText collapses internal whitespace runs to a single space and trims the ends
func SanitizeText(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// IsValidAddressNumber reports whether number is digits with an optional trailing letter (e.g. 123, 45B)
func IsValidAddressNumber(number string) bool {
	return addressNumberRegex.MatchString(strings.TrimSpace(number))
}

// RuneLen counts characters rather than bytes so accented names are measured correctly
func RuneLen(s string) int {
	return len([]rune(s))
}
