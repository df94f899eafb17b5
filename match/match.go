package match

import (
	"github.com/revelaction/lexhit/lexicon"
	sent "github.com/revelaction/lexhit/sentence"
)

// Classification is the lexicon match of one annotated token.
//
// Label is the compressed, count-based tag used for grouping: the name of
// the lexicon when only one matched, "both" for two matches and "triple" for
// three or more. Lexicons keeps the matched lexicon names in registry
// order, so that a "both" or "triple" label can still be resolved.
//
// the token {text: "whipped", lemma: "whip", pos: VERB}, with "whip" in the
// verb list of the punishment and reward lexicons, is classified as:
//
//	Label:    "both"
//	Lexicons: ["punishment", "reward"]
type Classification struct {
	Token sent.Token `json:"token"`

	// Lemma is the normalized lemma used for the lookup.
	Lemma string `json:"lemma"`

	Category lexicon.Category `json:"category"`

	Lexicons []string `json:"lexicons"`

	Label string `json:"label"`
}

// Classifier matches annotated tokens against the active lexicons of a
// Registry. A Classifier is not safe for concurrent use.
type Classifier struct {
	registry *lexicon.Registry

	normalizer *lexicon.Normalizer
}

func NewClassifier(r *lexicon.Registry) *Classifier {
	return &Classifier{
		registry:   r,
		normalizer: lexicon.NewNormalizer(),
	}
}

// Classify returns the Classification of a token. The second return value
// is false when the token is skipped: empty lemma, POS without category or
// no lexicon match.
func (c *Classifier) Classify(t sent.Token) (Classification, bool) {
	lemma := c.normalizer.Normalize(t.Lemma)
	if lemma == "" {
		return Classification{}, false
	}

	category, ok := lexicon.CategoryOf(t.Pos)
	if !ok {
		return Classification{}, false
	}

	var matched []string
	for _, lx := range c.registry.Lexicons() {
		if lx.HasLemma(category, lemma) {
			matched = append(matched, lx.Name)
		}
	}

	if len(matched) == 0 {
		return Classification{}, false
	}

	return Classification{
		Token:    t,
		Lemma:    lemma,
		Category: category,
		Lexicons: matched,
		Label:    lexicon.Label(matched),
	}, true
}

// ClassifyAll classifies a token stream, keeping the stream order. Skipped
// tokens produce no record.
func (c *Classifier) ClassifyAll(tokens []sent.Token) []Classification {
	var out []Classification
	for _, t := range tokens {
		if cl, ok := c.Classify(t); ok {
			out = append(out, cl)
		}
	}

	return out
}

// Has reports whether the classification matched the named lexicon.
func (cl Classification) Has(name string) bool {
	for _, n := range cl.Lexicons {
		if n == name {
			return true
		}
	}

	return false
}
