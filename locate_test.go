package reviewlens

import "testing"

func TestLocateRoundTrip(t *testing.T) {
	raws := []string{
		"This movie was AMAZING!!! Totally lit, best film ever.",
		// Runes whose byte length changes under case folding must neither
		// panic the tokenizer nor produce tokens absent from the input.
		"ȺȺȺȺn't bad",
		"İİİİn't bad",
	}
	for _, raw := range raws {
		tokens := Locate(raw, NewWordTokenizer())
		if len(tokens) == 0 {
			t.Fatalf("Locate(%q): no tokens located", raw)
		}
		for _, tok := range tokens {
			if got := raw[tok.Start:tok.End]; got != tok.Text {
				t.Errorf("raw[%d:%d] = %q, want %q", tok.Start, tok.End, got, tok.Text)
			}
		}
	}
}

func TestLocateRepeatedWordsResolveInOrder(t *testing.T) {
	raw := "good acting good pacing good ending"
	tokens := Locate(raw, NewWordTokenizer())

	var goods []int
	for _, tok := range tokens {
		if tok.Text == "good" {
			goods = append(goods, tok.Start)
		}
	}
	want := []int{0, 12, 24}
	if len(goods) != 3 || goods[0] != want[0] || goods[1] != want[1] || goods[2] != want[2] {
		t.Errorf("good offsets = %v, want %v", goods, want)
	}
}

func TestLocateMonotonicOffsets(t *testing.T) {
	raw := "so so so good, so so bad"
	tokens := Locate(raw, NewWordTokenizer())

	prevEnd := 0
	for _, tok := range tokens {
		if tok.Start < prevEnd {
			t.Errorf("token %q at %d starts before previous end %d", tok.Text, tok.Start, prevEnd)
		}
		prevEnd = tok.End
	}
}

// rewritingTokenizer emits a token that does not occur in the input, the way
// a sanitizing tokenizer might.
type rewritingTokenizer struct{}

func (rewritingTokenizer) Tokenize(text string) []string {
	return []string{"never-present", "movie"}
}

func TestLocateSkipsUnmatchedTokens(t *testing.T) {
	raw := "a movie"
	tokens := Locate(raw, rewritingTokenizer{})

	if len(tokens) != 1 || tokens[0].Text != "movie" {
		t.Fatalf("tokens = %v, want just the findable one", tokens)
	}
	if tokens[0].Start != 2 || tokens[0].End != 7 {
		t.Errorf("movie span = [%d,%d), want [2,7)", tokens[0].Start, tokens[0].End)
	}
}

func TestLocateEmptyInput(t *testing.T) {
	if tokens := Locate("", NewWordTokenizer()); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}
