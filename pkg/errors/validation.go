package errors

import (
	"strings"
	"unicode"
)

// maxURLLength bounds page URLs accepted from untrusted input.
const maxURLLength = 2048

// ValidateURL checks a page URL received from an outer layer (HTTP body,
// shell line) before it reaches the graph engine.
//
// The input files are whitespace separated, so a URL containing whitespace
// could never be written back to or read from them. Control characters are
// rejected for the same reason. Emptiness is left to the engine, which
// reports it as DUPLICATE_URL.
func ValidateURL(url string) error {
	if len(url) > maxURLLength {
		return New(ErrCodeInvalidInput, "url too long (max %d characters)", maxURLLength)
	}
	for _, r := range url {
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "url %q contains whitespace", url)
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "url contains invalid control characters")
		}
	}
	return nil
}

// ValidateKeywords checks that each keyword is a single non-empty token.
func ValidateKeywords(keywords []string) error {
	for i, kw := range keywords {
		if kw == "" {
			return New(ErrCodeInvalidInput, "keyword %d is empty", i)
		}
		if strings.IndexFunc(kw, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
			return New(ErrCodeInvalidInput, "keyword %q must be a single token", kw)
		}
	}
	return nil
}
