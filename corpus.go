package reviewlens

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Corpus is the demo set of reviews, loaded once at startup and read-only
// afterwards.
type Corpus struct {
	reviews   []string
	segmenter *sentences.DefaultSentenceTokenizer
}

// LoadCorpus reads one review per line, skipping blanks.
func LoadCorpus(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open demo corpus: %w", err)
	}
	defer f.Close()

	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("build sentence tokenizer: %w", err)
	}

	c := &Corpus{segmenter: segmenter}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			c.reviews = append(c.reviews, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read demo corpus %s: %w", path, err)
	}
	if len(c.reviews) == 0 {
		return nil, fmt.Errorf("demo corpus %s has no reviews", path)
	}
	return c, nil
}

// Len returns the number of loaded reviews.
func (c *Corpus) Len() int {
	return len(c.reviews)
}

// Random returns a uniformly sampled review.
func (c *Corpus) Random() string {
	return c.reviews[rand.Intn(len(c.reviews))]
}

// Preview returns the first maxSentences sentences of a review, for listings
// where the full text would be too long.
func (c *Corpus) Preview(review string, maxSentences int) string {
	if maxSentences < 1 {
		return ""
	}
	sents := c.segmenter.Tokenize(review)
	if len(sents) <= maxSentences {
		return review
	}
	var b strings.Builder
	for _, s := range sents[:maxSentences] {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}
