package reviewlens

import (
	"fmt"
	"math"
	"strings"
)

// spanSeparator is inserted between zero-gap highlighted spans so a renderer
// never fuses them into one run. U+200B ZERO WIDTH SPACE is invisible but
// still a byte-counted character, so all downstream offsets must be adjusted.
const spanSeparator = "\u200b"

// maxTransformChain bounds transitive transform resolution. A well-formed log
// chains at most slang then stem; the bound guards against cyclic
// dictionaries.
const maxTransformChain = 8

// SpanLabel formats the label shared by a span and its color map entry. Two
// tokens with the same sign and two-decimal score intentionally collapse to
// the same label, and therefore the same color.
func SpanLabel(score float64) string {
	if score > 0 {
		return fmt.Sprintf("POS (%.2f)", score)
	}
	return fmt.Sprintf("NEG (%.2f)", score)
}

// finalForm walks the transform log's before→after map transitively to find
// the fully normalized form of an original token: slang substitution composed
// with stemming, falling back to case folding at each step. Tokens the
// normalizer never touched resolve to their lowercased selves, which is the
// form the vectorizer's vocabulary uses.
func finalForm(text string, transforms map[string]string) string {
	form := text
	for i := 0; i < maxTransformChain; i++ {
		if next, ok := transforms[form]; ok {
			form = next
			continue
		}
		lower := strings.ToLower(form)
		if lower == form {
			break
		}
		form = lower
	}
	return form
}

// ResolveSpans joins located original-text tokens back to importance scores
// through the transform log and emits a highlight span for every token whose
// final form scores at or above the significance threshold. The top-N set
// gates the bar chart only; highlighting covers the full above-threshold
// population.
//
// Spans come out in ascending offset order and never overlap, because each
// derives from a distinct original token.
func ResolveSpans(tokens []Token, log *TransformLog, scores *ImportanceTable) []HighlightSpan {
	transforms := make(map[string]string, log.Len())
	for _, rec := range log.Records() {
		if _, ok := transforms[rec.Before]; !ok {
			transforms[rec.Before] = rec.After
		}
	}

	var spans []HighlightSpan
	for _, tok := range tokens {
		form := finalForm(tok.Text, transforms)
		score, ok := scores.Score(form)
		if !ok || math.Abs(score) < SignificanceThreshold {
			continue
		}
		spans = append(spans, HighlightSpan{
			Start: tok.Start,
			End:   tok.End,
			Label: SpanLabel(score),
			Score: score,
		})
	}
	return spans
}

// InsertSeparators rewrites text so that directly adjacent highlighted spans
// stay visually distinct: whenever span[i] ends exactly where span[i+1]
// starts, one separator is inserted between them. A single left-to-right pass
// shifts every span's offsets by the cumulative bytes inserted before it.
// Spans must be sorted by start offset and non-overlapping.
func InsertSeparators(text string, spans []HighlightSpan) (string, []HighlightSpan) {
	var points []int
	for i := 0; i+1 < len(spans); i++ {
		if spans[i].End == spans[i+1].Start {
			points = append(points, spans[i+1].Start)
		}
	}
	if len(points) == 0 {
		return text, spans
	}

	var b strings.Builder
	b.Grow(len(text) + len(points)*len(spanSeparator))
	prev := 0
	for _, p := range points {
		b.WriteString(text[prev:p])
		b.WriteString(spanSeparator)
		prev = p
	}
	b.WriteString(text[prev:])

	adjusted := make([]HighlightSpan, len(spans))
	for i, sp := range spans {
		start, end := sp.Start, sp.End
		for _, p := range points {
			// An insertion at a span's start pushes the span right; an
			// insertion at its (exclusive) end does not.
			if p <= sp.Start {
				start += len(spanSeparator)
			}
			if p < sp.End {
				end += len(spanSeparator)
			}
		}
		adjusted[i] = HighlightSpan{Start: start, End: end, Label: sp.Label, Score: sp.Score}
	}
	return b.String(), adjusted
}
