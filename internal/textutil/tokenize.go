package textutil

import (
	"strings"
	"unicode"
)

// Tokenize splits text on Unicode whitespace, lowercases each token, and
// strips surrounding punctuation and symbols. Tokens that strip to nothing
// are dropped. Interior punctuation survives, so "don't" stays one token.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := NormalizeToken(field)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// NormalizeToken lowercases a single token and trims non-alphanumeric
// characters from both ends. Returns "" if nothing remains.
func NormalizeToken(token string) string {
	trimmed := strings.TrimFunc(strings.ToLower(token), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return trimmed
}
