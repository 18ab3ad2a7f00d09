package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	txHashPattern   = regexp.MustCompile(`^[A-Fa-f0-9]{64}$`)
	cityNamePattern = regexp.MustCompile(`^[\p{L}\p{N}\s\-'.,]{1,100}$`)
)

// ValidateTxHash reports whether s looks like an XRPL transaction
// hash (64 hex characters).
func ValidateTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// SanitizeCityName strips control characters from a weather query and
// rejects anything that is not a plausible place name or zip code.
func SanitizeCityName(s string) (string, bool) {
	cleaned := stripControl(strings.TrimSpace(s))
	if cleaned == "" || !cityNamePattern.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// SanitizeForLogging makes untrusted input safe to log: control
// characters removed, length capped.
func SanitizeForLogging(s string, maxLength int) string {
	cleaned := stripControl(s)
	if maxLength > 0 && len(cleaned) > maxLength {
		return cleaned[:maxLength] + "..."
	}
	return cleaned
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
