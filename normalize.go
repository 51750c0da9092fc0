package reviewlens

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball"
)

// Cleaning patterns, applied in order to the full string. Order matters: URLs
// must go before the symbol squash or their punctuation would split them into
// innocent-looking words.
var (
	urlRE     = regexp.MustCompile(`http\S+|www\S+|\S+\.\S+/\S*`)
	tagRE     = regexp.MustCompile(`<.*?>`)
	mentionRE = regexp.MustCompile(`@\w+|#\w+|@ \w+`)
	symbolRE  = regexp.MustCompile(`[^A-Za-z\s]`)
	spaceRE   = regexp.MustCompile(`\s+`)
)

// repeatLimit is the run length at which a repeated character is treated as
// spam noise and removed. Known lossy: legitimate words with very long letter
// runs ("aaaaaargh") are deleted too.
const repeatLimit = 6

// A Normalizer cleans raw review text into the stemmed bag-of-words form the
// vectorizer was trained on, recording every rewrite it applies.
type Normalizer struct {
	tokenizer Tokenizer
	slang     SlangDict
}

// NewNormalizer builds a Normalizer around the given slang dictionary. A nil
// dictionary disables slang substitution.
func NewNormalizer(slang SlangDict, opts ...TokenizerOpt) *Normalizer {
	return &Normalizer{
		tokenizer: NewWordTokenizer(opts...),
		slang:     slang,
	}
}

// Normalize cleans raw text and returns the stemmed, space-joined token
// stream plus the provenance log of every rewrite. Empty input, or input that
// cleans down to nothing, yields an empty string and an empty log; that is
// not an error.
func (n *Normalizer) Normalize(raw string) (string, *TransformLog) {
	log := NewTransformLog()

	text := urlRE.ReplaceAllString(raw, "")
	text = tagRE.ReplaceAllString(text, "")
	text = mentionRE.ReplaceAllString(text, "")
	text = collapseRepeats(text)
	text = symbolRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spaceRE.ReplaceAllString(text, " "))

	var stemmed []string
	for _, word := range n.tokenizer.Tokenize(text) {
		// Slang substitution runs on the surface form, before lowercasing,
		// so dictionary entries stay case-sensitive.
		if rep, ok := n.slang.Lookup(word); ok && rep != word {
			log.Add(word, rep)
			word = rep
		}

		word = strings.ToLower(word)
		if isStopword(word) {
			continue
		}

		stem, err := snowball.Stem(word, "english", true)
		if err != nil {
			stem = word
		}
		if stem != word {
			log.Add(word, stem)
		}
		stemmed = append(stemmed, stem)
	}

	return strings.Join(stemmed, " "), log
}

// collapseRepeats removes any run of a single word character repeated
// repeatLimit or more times. Go's regexp has no backreferences, so this is a
// rune scan rather than a pattern.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i < repeatLimit || !isWordRune(runes[i]) {
			for k := i; k < j; k++ {
				b.WriteRune(runes[k])
			}
		}
		i = j
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// isStopword reports whether word is an English stopword. The stopwords
// library does not export its word lists, so we probe it the same way it is
// used for cleaning: a stopword cleans down to nothing.
func isStopword(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, "en", false)) == ""
}
