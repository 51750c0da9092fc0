package reviewlens

import "strings"

// Locate re-tokenizes the original, unmodified text and recovers the byte
// span of every token with a monotonic forward search: each token is matched
// at its first occurrence at or after the end of the previous match, so
// repeated surface forms resolve in textual order.
//
// The forward scan is a heuristic, not a guarantee. A token the tokenizer
// rewrote, or a cursor desynchronized by an earlier miss, can fail to match;
// such tokens are skipped and simply never highlighted.
func Locate(raw string, tok Tokenizer) []Token {
	var located []Token
	cursor := 0
	for _, word := range tok.Tokenize(raw) {
		idx := strings.Index(raw[cursor:], word)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		located = append(located, Token{
			Text:  word,
			Start: start,
			End:   start + len(word),
		})
		cursor = start + len(word)
	}
	return located
}
