package utils

import (
	"html"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user-submitted text. The policy
// entity-escapes what remains, so the output is unescaped back to plain
// text before storage.
func SanitizeText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// Capitalize upper-cases the first letter, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
