package reviewlens

import (
	"strings"
	"testing"
)

func TestNormalizeCleaning(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		desc     string
	}{
		{"brilliant film http://example.com/clip", "brilliant film", "http URL stripped"},
		{"brilliant film www.example.com", "brilliant film", "www URL stripped"},
		{"brilliant <br> film", "brilliant film", "HTML-like tag stripped"},
		{"@critic loved #cinema film", "love film", "mentions and hashtags stripped"},
		{"brilliant 10/10 film!!!", "brilliant film", "digits and punctuation squashed"},
		{"whooooooa brilliant", "wha brilliant", "6+ repeated characters removed"},
		{"", "", "empty input"},
		{"@critic", "", "input that cleans to nothing"},
	}

	n := NewNormalizer(nil)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			cleaned, _ := n.Normalize(tt.raw)
			if cleaned != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, cleaned, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotentOnCleanText(t *testing.T) {
	// No slang, no stopwords, no stemmable suffixes, no noise: the text comes
	// back unchanged (mod casing) with an empty provenance log.
	raw := "superb cast dialog"

	n := NewNormalizer(nil)
	cleaned, log := n.Normalize(raw)

	if cleaned != raw {
		t.Errorf("cleaned = %q, want %q", cleaned, raw)
	}
	if log.Len() != 0 {
		t.Errorf("expected empty transform log, got %v", log.Records())
	}
}

func TestNormalizeSlangAndStemProvenance(t *testing.T) {
	slang := SlangDict{"lit": "great"}
	n := NewNormalizer(slang)

	cleaned, log := n.Normalize("This movie was AMAZING!!! Totally lit, best film.")

	if cleaned != "movi amaz total great best film" {
		t.Fatalf("cleaned = %q", cleaned)
	}

	want := []TransformRecord{
		{Before: "movie", After: "movi"},
		{Before: "amazing", After: "amaz"},
		{Before: "lit", After: "great"},
		{Before: "totally", After: "total"},
	}
	for _, rec := range want {
		if !hasRecord(log, rec) {
			t.Errorf("transform log missing %v; got %v", rec, log.Records())
		}
	}

	// Every cleaned token that differs from its raw surface form must be
	// explained by the log, directly or transitively.
	rawTokens := map[string]bool{}
	for _, w := range strings.Fields("this movie was amazing totally lit best film") {
		rawTokens[w] = true
	}
	after := log.AfterSet()
	for _, tok := range strings.Fields(cleaned) {
		if rawTokens[tok] {
			continue // token survived unchanged
		}
		if _, ok := after[tok]; !ok {
			t.Errorf("cleaned token %q changed without a transform record", tok)
		}
	}
}

func TestNormalizeStopwordsAfterSlang(t *testing.T) {
	// Slang expands "u" to a stopword, which must then be dropped; the
	// substitution is still recorded.
	slang := SlangDict{"u": "you"}
	n := NewNormalizer(slang)

	cleaned, log := n.Normalize("u gotta watch closely")

	if strings.Contains(cleaned, "you") {
		t.Errorf("stopword survived normalization: %q", cleaned)
	}
	if !hasRecord(log, TransformRecord{Before: "u", After: "you"}) {
		t.Errorf("slang substitution not recorded; got %v", log.Records())
	}
}

func TestTransformLogDeduplicates(t *testing.T) {
	n := NewNormalizer(nil)
	_, log := n.Normalize("loved loved loved")

	if log.Len() != 1 {
		t.Errorf("expected 1 unique record, got %d: %v", log.Len(), log.Records())
	}
	if !hasRecord(log, TransformRecord{Before: "loved", After: "love"}) {
		t.Errorf("missing stem record; got %v", log.Records())
	}
}

func TestCollapseRepeats(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"sooooooo", "s"},
		{"sooner", "sooner"},
		{"aaaaa", "aaaaa"},    // 5 repeats, below the limit
		{"aaaaaa", ""},        // 6 repeats
		{"!!!!!!!!", "!!!!!!!!"}, // non-word runes kept for later squashing
	}
	for _, tt := range tests {
		if got := collapseRepeats(tt.in); got != tt.expected {
			t.Errorf("collapseRepeats(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func hasRecord(log *TransformLog, rec TransformRecord) bool {
	for _, r := range log.Records() {
		if r == rec {
			return true
		}
	}
	return false
}
