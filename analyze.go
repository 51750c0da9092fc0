package reviewlens

import (
	"errors"
	"strings"
)

// DefaultTopN is the number of top-ranked words charted when the caller does
// not ask for a specific count.
const DefaultTopN = 10

// An Analyzer runs the full explanation pipeline: normalize, vectorize,
// score, then project the importance scores back onto the original text. It
// holds only read-only artifacts, so one Analyzer is safe for concurrent use;
// all per-request state lives in the call.
type Analyzer struct {
	vectorizer Vectorizer
	scorer     Scorer
	normalizer *Normalizer
	tokenizer  Tokenizer
	topN       int
}

// An AnalyzerOpt adjusts Analyzer construction.
type AnalyzerOpt func(*Analyzer)

// WithSlang installs the slang dictionary used during normalization.
func WithSlang(dict SlangDict) AnalyzerOpt {
	return func(a *Analyzer) {
		a.normalizer = NewNormalizer(dict)
	}
}

// WithTopN changes the default chart size.
func WithTopN(n int) AnalyzerOpt {
	return func(a *Analyzer) {
		if n >= 1 {
			a.topN = n
		}
	}
}

// WithAnalyzerTokenizer replaces the tokenizer used for offset recovery.
func WithAnalyzerTokenizer(tok Tokenizer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tokenizer = tok
	}
}

// NewAnalyzer wires the pipeline around the injected vectorizer and scorer
// capabilities.
func NewAnalyzer(vectorizer Vectorizer, scorer Scorer, opts ...AnalyzerOpt) (*Analyzer, error) {
	if vectorizer == nil {
		return nil, errors.New("reviewlens: nil vectorizer")
	}
	if scorer == nil {
		return nil, errors.New("reviewlens: nil scorer")
	}
	a := &Analyzer{
		vectorizer: vectorizer,
		scorer:     scorer,
		normalizer: NewNormalizer(nil),
		tokenizer:  NewWordTokenizer(),
		topN:       DefaultTopN,
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	return a, nil
}

// Analyze classifies one review and explains the prediction. topN < 1 falls
// back to the analyzer default. Degenerate input never fails: a text that
// cleans down to nothing still produces a result, just with no highlights
// and whatever the scorer makes of a zero vector.
func (a *Analyzer) Analyze(raw string, topN int) *Result {
	if topN < 1 {
		topN = a.topN
	}

	cleaned, log := a.normalizer.Normalize(raw)

	vec := a.vectorizer.Vectorize(cleaned)
	negative, positive := a.scorer.Probabilities(vec)
	table := NewImportanceTable(a.vectorizer.FeatureNames(), a.scorer.Importances(vec))

	ranked, count := SelectTop(table, log, topN)

	var spans []HighlightSpan
	if strings.TrimSpace(raw) != "" {
		tokens := Locate(raw, a.tokenizer)
		spans = ResolveSpans(tokens, log, table)
	}

	return buildResult(raw, negative, positive, ranked, count, spans)
}
