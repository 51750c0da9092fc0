package reviewlens

import (
	"fmt"
	"sort"
)

// Fixed colors for the overall confidence chart, matching the dashboard's
// button palette: cool for negative, warm for positive.
const (
	negativeBarColor = "#008cba"
	positiveBarColor = "#f44336"
)

// A ConfidenceBar is one class's probability in the overall sentiment chart.
type ConfidenceBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// A WordBar is one ranked word in the top-words chart.
type WordBar struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Color string  `json:"color"`
}

// A WordChart is the ranked bar-chart dataset of the words driving the
// prediction, sorted by signed score ascending for horizontal rendering.
type WordChart struct {
	Title string    `json:"title"`
	Bars  []WordBar `json:"bars"`
}

// A Result carries everything the dashboard renders for one review: the
// class-confidence chart, the ranked word chart, and the annotated original
// text. TopN is the actual number of charted words, which may be fewer than
// requested.
type Result struct {
	Confidence []ConfidenceBar `json:"confidence"`
	TopWords   WordChart       `json:"top_words"`
	Annotated  AnnotatedText   `json:"annotated"`
	TopN       int             `json:"top_n"`
}

// buildResult assembles the renderable output from the pipeline's parts. The
// color map is built over the union of charted features and highlighted
// spans, so every label a renderer meets has a color.
func buildResult(raw string, negative, positive float64, ranked []Feature, count int, spans []HighlightSpan) *Result {
	colors := make(ColorMap)
	for _, sp := range spans {
		colors.Add(sp.Score)
	}

	bars := make([]WordBar, 0, len(ranked))
	for _, f := range ranked {
		label := colors.Add(f.Score)
		bars = append(bars, WordBar{Word: f.Name, Score: f.Score, Color: colors[label]})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Score < bars[j].Score
	})

	text, adjusted := InsertSeparators(raw, spans)

	return &Result{
		Confidence: []ConfidenceBar{
			{Label: "Negative", Value: negative, Color: negativeBarColor},
			{Label: "Positive", Value: positive, Color: positiveBarColor},
		},
		TopWords: WordChart{
			Title: fmt.Sprintf("Top %d Words Driving Sentiment", count),
			Bars:  bars,
		},
		Annotated: AnnotatedText{
			Text:   text,
			Spans:  adjusted,
			Colors: colors,
		},
		TopN: count,
	}
}
