package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`[^\d]`)
)

// SanitizeString trims leading/trailing whitespace and collapses
// consecutive inner whitespace into a single space.
func SanitizeString(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	return multiSpaceRegex.ReplaceAllString(trimmed, " ")
}

// SanitizeName trims and capitalizes a name: first rune upper, rest lower.
func SanitizeName(value string) string {
	s := SanitizeString(value)
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// SanitizeEmail trims and lower-cases an email address.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeUsername trims and lower-cases a username.
func SanitizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// SanitizePhone removes every non-digit character. Not applied in the
// registration flow, which validates literal digits instead.
func SanitizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// SanitizeUserData normalizes all registration fields present in the map.
// Absent keys pass through untouched; the transform never fails.
func SanitizeUserData(data map[string]string) map[string]string {
	sanitized := make(map[string]string, len(data))
	for k, v := range data {
		sanitized[k] = v
	}

	if v, ok := sanitized["firstname"]; ok {
		sanitized["firstname"] = SanitizeName(v)
	}
	if v, ok := sanitized["lastname"]; ok {
		sanitized["lastname"] = SanitizeName(v)
	}
	if v, ok := sanitized["email"]; ok {
		sanitized["email"] = SanitizeEmail(v)
	}
	if v, ok := sanitized["username"]; ok {
		sanitized["username"] = SanitizeUsername(v)
	}
	if v, ok := sanitized["countrycode"]; ok {
		sanitized["countrycode"] = strings.TrimSpace(v)
	}
	if v, ok := sanitized["mobilenumber"]; ok {
		sanitized["mobilenumber"] = strings.TrimSpace(v)
	}
	if v, ok := sanitized["password"]; ok {
		sanitized["password"] = strings.TrimSpace(v)
	}
	if v, ok := sanitized["confirmpassword"]; ok {
		sanitized["confirmpassword"] = strings.TrimSpace(v)
	}

	return sanitized
}
