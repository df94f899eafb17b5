package detect

import (
	"sort"

	logging "github.com/ipfs/go-log/v2"

	"github.com/revelaction/lexhit/freq"
	"github.com/revelaction/lexhit/lexicon"
	"github.com/revelaction/lexhit/match"
	sent "github.com/revelaction/lexhit/sentence"
	"github.com/revelaction/lexhit/stat"
)

var log = logging.Logger("detect")

// Result holds the two aggregates of a run plus the token level hits they
// were built from.
type Result struct {
	// Lexicons are the active lexicon names, in match order.
	Lexicons []string `json:"lexicons"`

	Sentences stat.SentenceTable `json:"sentences"`

	// Tokens are the classified tokens, in stream order.
	Tokens []match.Classification `json:"tokens"`

	Frequencies *freq.Table `json:"-"`
}

// Detector runs the classification and both folds over a corpus. Each Run
// owns its fold state, so a Detector can be reused for several corpora.
type Detector struct {
	registry *lexicon.Registry

	// OnToken, if set, is called after each token of the stream is
	// processed.
	OnToken func(current, total int)
}

func New(r *lexicon.Registry) *Detector {
	return &Detector{registry: r}
}

// Run classifies the token stream and aggregates the classifications per
// sentence and per lemma.
func (d *Detector) Run(corpus sent.Corpus) Result {
	names := d.registry.Names()

	classifier := match.NewClassifier(d.registry)
	sentences := stat.NewHandler(names, corpus.Sentences)
	lemmas := freq.NewReducer(names)

	var tokens []match.Classification
	total := len(corpus.Tokens)
	for i, t := range corpus.Tokens {
		if cl, ok := classifier.Classify(t); ok {
			tokens = append(tokens, cl)
			sentences.Add(cl)
			lemmas.Add(cl)
		}

		if d.OnToken != nil {
			d.OnToken(i+1, total)
		}
	}

	table := sentences.Table()
	if table.Dropped > 0 {
		log.Warnf("%d classified tokens belong to sentences missing from the sentence list", table.Dropped)
	}
	log.Debugw("run done", "sentences", len(table.Rows), "tokens", total, "hits", len(tokens), "lexicons", names)

	return Result{
		Lexicons:    names,
		Sentences:   table,
		Tokens:      tokens,
		Frequencies: lemmas.Table(),
	}
}

// Stats summarizes the sentence table of the result.
func (r Result) Stats() stat.Stats {
	return stat.Summarize(r.Sentences)
}

// SentencesWithLemma returns the ascending, unique ids of the sentences
// having a token with the lemma. An empty pos matches every tag.
func SentencesWithLemma(corpus sent.Corpus, lemma, pos string) []int {
	n := lexicon.NewNormalizer()
	lemma = n.Normalize(lemma)
	if lemma == "" {
		return nil
	}

	seen := map[int]bool{}
	var ids []int
	for _, t := range corpus.Tokens {
		if pos != "" && t.Pos != pos {
			continue
		}
		if n.Normalize(t.Lemma) != lemma {
			continue
		}
		if !seen[t.SentenceId] {
			seen[t.SentenceId] = true
			ids = append(ids, t.SentenceId)
		}
	}

	sort.Ints(ids)
	return ids
}
