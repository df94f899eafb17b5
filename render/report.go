package render

import (
	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/freq"
	"github.com/revelaction/lexhit/match"
	"github.com/revelaction/lexhit/stat"
)

// Frequencies is the top lemma list of a label or a lexicon.
type Frequencies struct {
	// Kind is "label" or "lexicon"
	Kind    string       `json:"kind"`
	Name    string       `json:"name"`
	Entries []freq.Entry `json:"entries"`
}

// Report is the exported form of a run. Every list is ordered, so the
// encoding of a Report is deterministic.
type Report struct {
	Lexicons    []string               `json:"lexicons"`
	Stats       stat.Stats             `json:"stats"`
	Frequencies []Frequencies          `json:"frequencies"`
	Sentences   []stat.SentenceHits    `json:"sentences"`
	Tokens      []match.Classification `json:"tokens"`
}

// NewReport builds the Report of a run, keeping the top lemmas of every
// label and lexicon (all if top <= 0).
func NewReport(res detect.Result, top int) Report {
	rep := Report{
		Lexicons:    res.Lexicons,
		Stats:       res.Stats(),
		Frequencies: []Frequencies{},
		Sentences:   res.Sentences.Rows,
		Tokens:      res.Tokens,
	}

	if rep.Sentences == nil {
		rep.Sentences = []stat.SentenceHits{}
	}
	if rep.Tokens == nil {
		rep.Tokens = []match.Classification{}
	}

	if res.Frequencies == nil {
		return rep
	}

	for _, label := range res.Frequencies.Labels() {
		rep.Frequencies = append(rep.Frequencies, Frequencies{"label", label, entries(res.Frequencies.Top(label, top))})
	}
	for _, name := range res.Frequencies.Lexicons() {
		rep.Frequencies = append(rep.Frequencies, Frequencies{"lexicon", name, entries(res.Frequencies.TopLexicon(name, top))})
	}

	return rep
}

func entries(e []freq.Entry) []freq.Entry {
	if e == nil {
		return []freq.Entry{}
	}
	return e
}
