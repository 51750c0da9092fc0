package reviewlens

// A Token represents an individual word of text along with its byte offsets
// into the string it was recovered from. Offsets from the raw text and the
// cleaned text are never comparable; only offsets produced by Locate refer to
// the original input.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// A TransformRecord explains a single rewrite applied during normalization,
// either a slang substitution or a stemming step.
type TransformRecord struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// A TransformLog collects the unique rewrites applied to a text. It is
// append-only while normalization runs and read-only afterwards. Unchanged
// tokens never appear in the log.
type TransformLog struct {
	records []TransformRecord
	seen    map[TransformRecord]struct{}
}

// NewTransformLog returns an empty log.
func NewTransformLog() *TransformLog {
	return &TransformLog{seen: make(map[TransformRecord]struct{})}
}

// Add records a before/after pair. Duplicate pairs and pairs where nothing
// changed are dropped.
func (l *TransformLog) Add(before, after string) {
	if before == after {
		return
	}
	rec := TransformRecord{Before: before, After: after}
	if _, ok := l.seen[rec]; ok {
		return
	}
	l.seen[rec] = struct{}{}
	l.records = append(l.records, rec)
}

// Records returns the recorded rewrites in insertion order.
func (l *TransformLog) Records() []TransformRecord {
	return l.records
}

// Len returns the number of unique rewrites recorded.
func (l *TransformLog) Len() int {
	return len(l.records)
}

// AfterSet returns the set of transformed forms present in the log. This is
// the population of features eligible for the ranked word chart.
func (l *TransformLog) AfterSet() map[string]struct{} {
	set := make(map[string]struct{}, len(l.records))
	for _, rec := range l.records {
		set[rec.After] = struct{}{}
	}
	return set
}

// A Feature pairs a vocabulary term with its signed importance score.
// Positive scores push the prediction toward the positive class.
type Feature struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// A HighlightSpan marks a byte range of the original text whose word drove the
// prediction. Label doubles as the key into the color map.
type HighlightSpan struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AnnotatedText is the renderable form of the highlighted review: the
// (separator-adjusted) text, its non-overlapping spans in ascending offset
// order, and a color per span label.
type AnnotatedText struct {
	Text   string            `json:"text"`
	Spans  []HighlightSpan   `json:"spans"`
	Colors map[string]string `json:"colors"`
}
