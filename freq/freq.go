// Package freq counts the lemmas of classified tokens.
package freq

import (
	"sort"

	"github.com/revelaction/lexhit/lexicon"
	"github.com/revelaction/lexhit/match"
)

// Entry is a lemma and its number of occurrences.
type Entry struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}

// Counter counts lemmas, remembering the order in which each lemma was
// first seen.
type Counter struct {
	index   map[string]int
	entries []Entry
}

func NewCounter() *Counter {
	return &Counter{index: map[string]int{}}
}

func (c *Counter) Add(lemma string) {
	i, ok := c.index[lemma]
	if !ok {
		c.index[lemma] = len(c.entries)
		c.entries = append(c.entries, Entry{Lemma: lemma, Count: 1})
		return
	}
	c.entries[i].Count++
}

// Count returns the occurrences of a lemma.
func (c *Counter) Count(lemma string) int {
	if i, ok := c.index[lemma]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct lemmas.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Entries returns the entries in first seen order.
func (c *Counter) Entries() []Entry {
	return append([]Entry{}, c.entries...)
}

// MostCommon returns the n entries with the highest count, all entries if
// n <= 0. Equal counts keep first seen order.
func (c *Counter) MostCommon(n int) []Entry {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Table holds the lemma counters of a run, by combined label and by
// lexicon.
type Table struct {
	labels   []string
	lexicons []string

	byLabel   map[string]*Counter
	byLexicon map[string]*Counter
}

// Labels returns the labels of the table: lexicon names, "both", "triple".
func (t *Table) Labels() []string {
	return t.labels
}

// Lexicons returns the lexicon names of the table.
func (t *Table) Lexicons() []string {
	return t.lexicons
}

// Label returns the counter of a combined label.
func (t *Table) Label(label string) (*Counter, bool) {
	c, ok := t.byLabel[label]
	return c, ok
}

// Lexicon returns the counter of every token matched by the lexicon,
// regardless of its combined label.
func (t *Table) Lexicon(name string) (*Counter, bool) {
	c, ok := t.byLexicon[name]
	return c, ok
}

// Top returns the n most common lemmas of a combined label. Ties keep the
// order in which the lemmas were first seen.
func (t *Table) Top(label string, n int) []Entry {
	c, ok := t.byLabel[label]
	if !ok {
		return nil
	}
	return c.MostCommon(n)
}

// TopLexicon is Top for the per lexicon counters.
func (t *Table) TopLexicon(name string, n int) []Entry {
	c, ok := t.byLexicon[name]
	if !ok {
		return nil
	}
	return c.MostCommon(n)
}

// Reducer folds classifications into a Table. Sentence boundaries are
// ignored.
type Reducer struct {
	table *Table
}

func NewReducer(lexicons []string) *Reducer {
	t := &Table{
		labels:    lexicon.Labels(lexicons),
		lexicons:  append([]string{}, lexicons...),
		byLabel:   map[string]*Counter{},
		byLexicon: map[string]*Counter{},
	}

	for _, l := range t.labels {
		t.byLabel[l] = NewCounter()
	}
	for _, name := range lexicons {
		t.byLexicon[name] = NewCounter()
	}

	return &Reducer{table: t}
}

func (r *Reducer) Add(cl match.Classification) {
	if c, ok := r.table.byLabel[cl.Label]; ok {
		c.Add(cl.Lemma)
	}

	for _, name := range cl.Lexicons {
		if c, ok := r.table.byLexicon[name]; ok {
			c.Add(cl.Lemma)
		}
	}
}

func (r *Reducer) Table() *Table {
	return r.table
}
