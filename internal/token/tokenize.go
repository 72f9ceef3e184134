package token

import "strings"

// Tokenize splits a listing title into the token sequence the extraction
// engine consumes. Tokens are whitespace-delimited; trailing list
// punctuation is stripped, but parentheses and embedded symbols such as
// "/" are preserved because the extractors key off them.
func Tokenize(title string) []string {
	fields := strings.Fields(title)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",;")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
