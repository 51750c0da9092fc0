package reviewlens

import (
	"math"
	"sort"
)

// SignificanceThreshold is the minimum importance magnitude treated as
// signal. Scores below it are noise: never charted, never highlighted.
const SignificanceThreshold = 0.01

// An ImportanceTable holds one signed importance score per vocabulary
// feature, keyed by the stemmed feature name. It preserves the vectorizer's
// feature order so that ranking ties break deterministically.
type ImportanceTable struct {
	names  []string
	scores map[string]float64
}

// NewImportanceTable pairs feature names with their scores. The two slices
// must be aligned; trailing entries without a counterpart are dropped.
func NewImportanceTable(names []string, scores []float64) *ImportanceTable {
	n := len(names)
	if len(scores) < n {
		n = len(scores)
	}
	t := &ImportanceTable{
		names:  names[:n],
		scores: make(map[string]float64, n),
	}
	for i := 0; i < n; i++ {
		t.scores[names[i]] = scores[i]
	}
	return t
}

// Score returns the importance of a feature. Missing features read as zero,
// which keeps them below the significance threshold.
func (t *ImportanceTable) Score(name string) (float64, bool) {
	s, ok := t.scores[name]
	return s, ok
}

// Len returns the number of features in the table.
func (t *ImportanceTable) Len() int {
	return len(t.names)
}

// SelectTop picks the features that should appear in the ranked word chart.
// The table spans the entire vocabulary, so selection is a three-stage
// filter: restrict to transformed forms actually present in this text, drop
// magnitudes below the significance threshold, then keep the topN largest by
// magnitude. Ties keep the table's original order (stable sort), so repeated
// runs rank identically.
//
// When fewer than topN features qualify, all of them are returned; callers
// must label output with the returned count, not the requested topN.
func SelectTop(t *ImportanceTable, log *TransformLog, topN int) ([]Feature, int) {
	present := log.AfterSet()

	var ranked []Feature
	for _, name := range t.names {
		if _, ok := present[name]; !ok {
			continue
		}
		score := t.scores[name]
		if math.Abs(score) < SignificanceThreshold {
			continue
		}
		ranked = append(ranked, Feature{Name: name, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Score) > math.Abs(ranked[j].Score)
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, len(ranked)
}
