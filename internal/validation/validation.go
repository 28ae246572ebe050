package validation

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFilterValueLength bounds a single title or experience level value.
const MaxFilterValueLength = 200

// ValidateFilterValue checks a title or experience level from a query string.
// Values are compared against the loaded data later; this only rejects input
// that can never be a dataset value.
func ValidateFilterValue(value string) (bool, string) {
	if len(value) > MaxFilterValueLength {
		return false, "filter value is too long"
	}
	if !utf8.ValidString(value) {
		return false, "filter value must be valid UTF-8"
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return false, "filter value contains control characters"
		}
	}
	return true, ""
}

// ParseList flattens repeated and comma-separated query values into a
// trimmed list without empty entries. A nil input (parameter absent) stays
// nil; a present but empty parameter yields an empty, non-nil list.
func ParseList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// SafeRedirectPath returns path if it is a local absolute path, otherwise "/".
// This prevents open redirects through the post-login return URL.
func SafeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}

	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return path
}
