// Package words owns the static word catalog: a finite, ordered,
// read-only list of entries loaded once at startup.
package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/samber/lo"
)

// WordEntry is one immutable catalog record. Term is the identity and
// must be unique within the catalog.
type WordEntry struct {
	Term        string `json:"term"`
	Category    string `json:"category"`
	Hint        string `json:"hint"`
	Description string `json:"description"`
}

type wordList struct {
	Words []WordEntry `json:"words"`
}

// ErrEmptyCatalog means no entries were supplied. A catalog with no
// entries cannot form a round, so construction fails outright.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// Catalog is the loaded word list plus a term lookup index.
type Catalog struct {
	entries []WordEntry
	byTerm  map[string]WordEntry
}

// New builds a catalog from entries, rejecting empty input and duplicate
// terms.
func New(entries []WordEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	byTerm := lo.Associate(entries, func(e WordEntry) (string, WordEntry) {
		return e.Term, e
	})
	if len(byTerm) != len(entries) {
		return nil, fmt.Errorf("words: catalog has %d duplicate terms", len(entries)-len(byTerm))
	}
	return &Catalog{entries: slices.Clone(entries), byTerm: byTerm}, nil
}

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	var wl wordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", path, err)
	}
	return New(wl.Words)
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i, in catalog order.
func (c *Catalog) At(i int) WordEntry {
	return c.entries[i]
}

// Entries returns a copy of the catalog in order.
func (c *Catalog) Entries() []WordEntry {
	return slices.Clone(c.entries)
}

// Lookup finds an entry by its term.
func (c *Catalog) Lookup(term string) (WordEntry, bool) {
	e, ok := c.byTerm[term]
	return e, ok
}
