package stat

import (
	"sort"

	"github.com/revelaction/lexhit/lexicon"
	"github.com/revelaction/lexhit/match"
	sent "github.com/revelaction/lexhit/sentence"
)

// LexiconHits are the hits of one lexicon in one sentence.
type LexiconHits struct {
	Lexicon string `json:"lexicon"`

	// Count is len(Lemmas)
	Count int `json:"count"`

	// Lemmas in token order.
	Lemmas []string `json:"lemmas"`
}

// SentenceHits is the aggregated row of a sentence. Hits has one entry per
// active lexicon, in registry order, also when the sentence has no hit.
type SentenceHits struct {
	Id     int           `json:"sentence_id"`
	Text   string        `json:"sentence_text"`
	Hits   []LexiconHits `json:"hits"`
	AnyHit bool          `json:"any_hit"`
}

// Count returns the hit count of the lexicon at index i.
func (s SentenceHits) Count(i int) int {
	return len(s.Hits[i].Lemmas)
}

// NumLexicons returns how many lexicons hit the sentence.
func (s SentenceHits) NumLexicons() int {
	n := 0
	for _, h := range s.Hits {
		if len(h.Lemmas) > 0 {
			n++
		}
	}
	return n
}

// SentenceTable is the dense sentence table of a run: one row per sentence
// of the sentence list, ascending by id.
type SentenceTable struct {
	Lexicons []string       `json:"lexicons"`
	Rows     []SentenceHits `json:"rows"`

	// Dropped counts classifications whose sentence id is not in the
	// sentence list.
	Dropped int `json:"dropped"`
}

// Index returns the column index of a lexicon, -1 if not active.
func (t SentenceTable) Index(name string) int {
	for i, n := range t.Lexicons {
		if n == name {
			return i
		}
	}
	return -1
}

// Handler folds classifications into per sentence hits. The universe of
// sentences is fixed at construction from the independent sentence list,
// so sentences without any classification still get a row.
type Handler struct {
	lexicons []string
	index    map[string]int

	rows    map[int]*SentenceHits
	dropped int
}

func NewHandler(lexicons []string, sentences []sent.Sentence) *Handler {
	h := &Handler{
		lexicons: lexicons,
		index:    make(map[string]int, len(lexicons)),
		rows:     make(map[int]*SentenceHits, len(sentences)),
	}

	for i, name := range lexicons {
		h.index[name] = i
	}

	for _, s := range sentences {
		// a repeated id keeps one row, with the last text
		if row, ok := h.rows[s.Id]; ok {
			row.Text = s.Text
			continue
		}

		row := &SentenceHits{Id: s.Id, Text: s.Text, Hits: make([]LexiconHits, len(lexicons))}
		for i, name := range lexicons {
			row.Hits[i] = LexiconHits{Lexicon: name, Lemmas: []string{}}
		}
		h.rows[s.Id] = row
	}

	return h
}

// Add appends the lemma of the classification to the list of every matched
// lexicon of its sentence.
func (h *Handler) Add(cl match.Classification) {
	row, ok := h.rows[cl.Token.SentenceId]
	if !ok {
		h.dropped++
		return
	}

	for _, name := range cl.Lexicons {
		i, ok := h.index[name]
		if !ok {
			continue
		}
		row.Hits[i].Lemmas = append(row.Hits[i].Lemmas, cl.Lemma)
		row.Hits[i].Count = len(row.Hits[i].Lemmas)
		row.AnyHit = true
	}
}

// Aggregate adds a classification stream.
func (h *Handler) Aggregate(cls []match.Classification) {
	for _, cl := range cls {
		h.Add(cl)
	}
}

// Table returns the dense, ascending sentence table.
func (h *Handler) Table() SentenceTable {
	ids := make([]int, 0, len(h.rows))
	for id := range h.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]SentenceHits, 0, len(ids))
	for _, id := range ids {
		row := *h.rows[id]
		hits := make([]LexiconHits, len(row.Hits))
		for i, lh := range row.Hits {
			hits[i] = LexiconHits{
				Lexicon: lh.Lexicon,
				Count:   len(lh.Lemmas),
				Lemmas:  append([]string{}, lh.Lemmas...),
			}
		}
		row.Hits = hits
		rows = append(rows, row)
	}

	lexicons := append([]string{}, h.lexicons...)
	return SentenceTable{Lexicons: lexicons, Rows: rows, Dropped: h.dropped}
}

// Select returns the rows of a hit category:
//
//   - a lexicon name: hit by that lexicon only
//   - "both": hit by exactly two lexicons
//   - "triple": hit by three or more lexicons
//   - "any": hit by at least one lexicon
//   - "none": no hit
//
// ok is false for an unknown category.
func (t SentenceTable) Select(category string) (rows []SentenceHits, ok bool) {
	var pred func(SentenceHits) bool

	switch category {
	case lexicon.HitNone:
		pred = func(s SentenceHits) bool { return !s.AnyHit }
	case lexicon.HitAny:
		pred = func(s SentenceHits) bool { return s.AnyHit }
	case lexicon.LabelBoth:
		pred = func(s SentenceHits) bool { return s.NumLexicons() == 2 }
	case lexicon.LabelTriple:
		pred = func(s SentenceHits) bool { return s.NumLexicons() >= 3 }
	default:
		i := t.Index(category)
		if i < 0 {
			return nil, false
		}
		pred = func(s SentenceHits) bool { return s.Count(i) > 0 && s.NumLexicons() == 1 }
	}

	for _, r := range t.Rows {
		if pred(r) {
			rows = append(rows, r)
		}
	}

	return rows, true
}

// SelectCategories lists the categories accepted by Select for the table.
func (t SentenceTable) SelectCategories() []string {
	cats := append([]string{}, t.Lexicons...)
	return append(cats, lexicon.LabelBoth, lexicon.LabelTriple, lexicon.HitAny, lexicon.HitNone)
}
