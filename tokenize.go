package reviewlens

import (
	"strings"
	"unicode/utf8"
)

// A Tokenizer splits text into words, treating punctuation as token
// boundaries.
type Tokenizer interface {
	Tokenize(text string) []string
}

// wordTokenizer splits whitespace-delimited chunks into word and punctuation
// tokens, peeling leading and trailing punctuation and splitting contractions.
type wordTokenizer struct {
	contractions []string
	splitCases   []string
	suffixes     []string
	prefixes     []string
}

type TokenizerOpt func(*wordTokenizer)

// UsingContractions replaces the default contraction suffixes.
func UsingContractions(x []string) TokenizerOpt {
	return func(t *wordTokenizer) {
		t.contractions = x
	}
}

// UsingSuffixes replaces the default trailing punctuation set.
func UsingSuffixes(x []string) TokenizerOpt {
	return func(t *wordTokenizer) {
		t.suffixes = x
	}
}

// UsingPrefixes replaces the default leading punctuation set.
func UsingPrefixes(x []string) TokenizerOpt {
	return func(t *wordTokenizer) {
		t.prefixes = x
	}
}

// NewWordTokenizer constructs the default word tokenizer.
func NewWordTokenizer(opts ...TokenizerOpt) Tokenizer {
	t := &wordTokenizer{
		contractions: contractions,
		suffixes:     suffixes,
		prefixes:     prefixes,
	}
	for _, applyOpt := range opts {
		applyOpt(t)
	}
	t.splitCases = append(t.splitCases, t.contractions...)
	return t
}

// Tokenize splits text into words and punctuation tokens. Every token is a
// literal substring of the input, which is what lets Locate recover offsets
// by forward search.
func (t *wordTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, span := range strings.Fields(text) {
		tokens = append(tokens, t.doSplit(span)...)
	}
	return tokens
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *wordTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		last = utf8.RuneCountInString(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., ("great -> [", great].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if idx, length := indexAnyCase(token, t.splitCases); idx > 0 {
			// Handle contractions -- e.g., don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if idx == 0 {
			// The split case sits at the front; emit it as its own token.
			tokens = addToken(token[:length], tokens)
			token = token[length:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., lit, -> [lit, ,].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// indexAnyCase finds the first split case occurring in s, matching ASCII
// letters case-insensitively. The split cases are pure ASCII, so a match
// covers only single-byte runes of s and the returned index and length are
// always safe to slice s with. Folding the whole string instead would not
// be: lowercasing can change a rune's byte length and misalign the index.
func indexAnyCase(s string, cases []string) (idx, length int) {
	for _, c := range cases {
		if i := indexFoldASCII(s, c); i > -1 {
			return i, len(c)
		}
	}
	return -1, 0
}

func indexFoldASCII(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
