package reviewlens

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// A Vectorizer converts cleaned text into a numeric feature vector over a
// fixed vocabulary, and exposes the vocabulary's feature names in a stable
// order. It is an opaque, pre-trained capability injected at startup.
type Vectorizer interface {
	Vectorize(cleaned string) *mat.VecDense
	FeatureNames() []string
}

// A Scorer consumes one feature vector at a time and produces per-class
// probabilities plus per-feature signed importance scores. Like the
// Vectorizer, it is pre-trained and opaque to the pipeline.
type Scorer interface {
	Probabilities(vec *mat.VecDense) (negative, positive float64)
	Importances(vec *mat.VecDense) []float64
}

// modelFile is the on-disk artifact layout. All slices are aligned with the
// vocabulary.
type modelFile struct {
	Vocabulary []string  `json:"vocabulary"`
	IDF        []float64 `json:"idf"`
	Weights    []float64 `json:"weights"`
	Intercept  float64   `json:"intercept"`
}

// A TFIDFVectorizer maps cleaned text to an L2-normalized tf-idf vector over
// its trained vocabulary. Terms outside the vocabulary are ignored.
type TFIDFVectorizer struct {
	vocab map[string]int
	names []string
	idf   *mat.VecDense
}

// Vectorize counts vocabulary terms in the cleaned text, applies idf weights
// and L2-normalizes. Empty input yields the zero vector.
func (v *TFIDFVectorizer) Vectorize(cleaned string) *mat.VecDense {
	x := mat.NewVecDense(len(v.names), nil)
	for _, term := range strings.Fields(cleaned) {
		if i, ok := v.vocab[term]; ok {
			x.SetVec(i, x.AtVec(i)+1)
		}
	}
	x.MulElemVec(x, v.idf)
	if norm := mat.Norm(x, 2); norm > 0 {
		x.ScaleVec(1/norm, x)
	}
	return x
}

// FeatureNames returns the vocabulary in training order.
func (v *TFIDFVectorizer) FeatureNames() []string {
	return v.names
}

// A LinearScorer scores a feature vector with a pre-trained linear sentiment
// model through a logistic link. For a linear model the exact per-feature
// attribution is w_i * x_i, so Importances needs no approximation.
type LinearScorer struct {
	weights   *mat.VecDense
	intercept float64
}

// Probabilities returns the negative and positive class probabilities for
// one feature vector. They always sum to one.
func (s *LinearScorer) Probabilities(vec *mat.VecDense) (negative, positive float64) {
	z := mat.Dot(s.weights, vec) + s.intercept
	positive = 1 / (1 + math.Exp(-z))
	return 1 - positive, positive
}

// Importances returns the signed contribution of each feature to the score,
// aligned with the vectorizer's feature names.
func (s *LinearScorer) Importances(vec *mat.VecDense) []float64 {
	contrib := mat.NewVecDense(vec.Len(), nil)
	contrib.MulElemVec(s.weights, vec)
	return contrib.RawVector().Data
}

// ModelFromDisk loads the bundled vectorizer and scorer from a JSON artifact.
// The artifact is consumed as-is; no training happens here.
func ModelFromDisk(path string) (*TFIDFVectorizer, *LinearScorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read model artifact: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}

	n := len(mf.Vocabulary)
	if n == 0 {
		return nil, nil, fmt.Errorf("model artifact %s: empty vocabulary", path)
	}
	if len(mf.IDF) != n || len(mf.Weights) != n {
		return nil, nil, fmt.Errorf("model artifact %s: vocabulary, idf and weights must align (%d/%d/%d)",
			path, n, len(mf.IDF), len(mf.Weights))
	}

	vocab := make(map[string]int, n)
	for i, term := range mf.Vocabulary {
		vocab[term] = i
	}

	vectorizer := &TFIDFVectorizer{
		vocab: vocab,
		names: mf.Vocabulary,
		idf:   mat.NewVecDense(n, mf.IDF),
	}
	scorer := &LinearScorer{
		weights:   mat.NewVecDense(n, mf.Weights),
		intercept: mf.Intercept,
	}
	return vectorizer, scorer, nil
}
