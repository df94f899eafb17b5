package stat

import (
	"fmt"
)

// Rate is a fraction of sentences. A rate over an empty corpus is
// undefined.
type Rate struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

func (r Rate) Defined() bool {
	return r.Den > 0
}

// Value returns the fraction, 0 if undefined.
func (r Rate) Value() float64 {
	if !r.Defined() {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rate) String() string {
	if !r.Defined() {
		return "undefined"
	}
	return fmt.Sprintf("%.1f%%", r.Value()*100)
}

// LexiconStats summarizes the hits of one lexicon over the corpus.
type LexiconStats struct {
	Name string `json:"name"`

	// Sentences with at least one hit
	Sentences Rate `json:"sentences"`

	// Tokens is the total number of hits
	Tokens int `json:"tokens"`

	// Distribution[k] is the number of sentences with exactly k hits.
	Distribution []int `json:"distribution"`
}

// PairStats counts the sentences hit by both lexicons of a pair.
type PairStats struct {
	A         string `json:"a"`
	B         string `json:"b"`
	Sentences Rate   `json:"sentences"`
}

type Stats struct {
	NumSentences int            `json:"num_sentences"`
	AnyHit       Rate           `json:"any_hit"`
	Lexicons     []LexiconStats `json:"lexicons"`
	Pairs        []PairStats    `json:"pairs"`
}

// Summarize computes the corpus level statistics of a sentence table.
func Summarize(t SentenceTable) Stats {
	total := len(t.Rows)
	st := Stats{
		NumSentences: total,
		AnyHit:       Rate{Den: total},
		Lexicons:     make([]LexiconStats, len(t.Lexicons)),
	}

	for i, name := range t.Lexicons {
		st.Lexicons[i] = LexiconStats{Name: name, Sentences: Rate{Den: total}, Distribution: []int{}}
	}

	for i := range t.Lexicons {
		for j := i + 1; j < len(t.Lexicons); j++ {
			st.Pairs = append(st.Pairs, PairStats{A: t.Lexicons[i], B: t.Lexicons[j], Sentences: Rate{Den: total}})
		}
	}

	for _, row := range t.Rows {
		if row.AnyHit {
			st.AnyHit.Num++
		}

		for i := range t.Lexicons {
			k := row.Count(i)
			ls := &st.Lexicons[i]
			for len(ls.Distribution) <= k {
				ls.Distribution = append(ls.Distribution, 0)
			}
			ls.Distribution[k]++
			ls.Tokens += k
			if k > 0 {
				ls.Sentences.Num++
			}
		}

		p := 0
		for i := range t.Lexicons {
			for j := i + 1; j < len(t.Lexicons); j++ {
				if row.Count(i) > 0 && row.Count(j) > 0 {
					st.Pairs[p].Sentences.Num++
				}
				p++
			}
		}
	}

	return st
}
