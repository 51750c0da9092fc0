package reviewlens

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{
			"This movie was AMAZING!!! Totally lit, best film ever.",
			[]string{"This", "movie", "was", "AMAZING", "!", "!", "!", "Totally", "lit", ",", "best", "film", "ever", "."},
			"punctuation as boundaries",
		},
		{
			"don't stop",
			[]string{"do", "n't", "stop"},
			"contraction split",
		},
		{
			`(a "quoted" remark)`,
			[]string{"(", "a", `"`, "quoted", `"`, "remark", ")"},
			"wrapping punctuation peeled",
		},
		{
			"   spaced    out   ",
			[]string{"spaced", "out"},
			"whitespace runs",
		},
		{
			"DON'T STOP",
			[]string{"DO", "N'T", "STOP"},
			"uppercase contraction split",
		},
		{
			"ȺȺȺȺn't bad",
			[]string{"ȺȺȺȺ", "n't", "bad"},
			"clitic after runes that grow when lowercased",
		},
		{
			"İİİİn't bad",
			[]string{"İİİİ", "n't", "bad"},
			"clitic after runes that shrink when lowercased",
		},
		{
			"",
			nil,
			"empty input",
		},
	}

	tok := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTokenizeLiteralSubstrings(t *testing.T) {
	// Every token must be a literal substring of the input; offset recovery
	// by forward search depends on it.
	text := `The "worst" film, truly awful... don't bother!`
	tok := NewWordTokenizer()

	cursor := 0
	for _, word := range tok.Tokenize(text) {
		idx := indexFrom(text, word, cursor)
		if idx < 0 {
			t.Fatalf("token %q not found in input after byte %d", word, cursor)
		}
		cursor = idx + len(word)
	}
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
