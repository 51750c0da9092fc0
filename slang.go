package reviewlens

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// A SlangDict maps informal terms to their canonical replacements. Loaded
// once at startup and read-only afterwards.
type SlangDict map[string]string

// Lookup returns the canonical form for an informal term.
func (d SlangDict) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}
	rep, ok := d[word]
	return rep, ok
}

// LoadSlangDict reads a two-column CSV of keyword,replacement pairs. A header
// row named "keyword" is skipped. Rows with missing columns are ignored.
func LoadSlangDict(path string) (SlangDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open slang dictionary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse slang dictionary %s: %w", path, err)
	}

	dict := make(SlangDict, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		val := strings.TrimSpace(row[1])
		if i == 0 && strings.EqualFold(key, "keyword") {
			continue
		}
		if key == "" || val == "" {
			continue
		}
		dict[key] = val
	}
	return dict, nil
}
