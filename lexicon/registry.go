package lexicon

import (
	"fmt"
)

const (
	// LabelBoth is the combined label of a token matched by two lexicons.
	LabelBoth = "both"

	// LabelTriple is the combined label of a token matched by three or
	// more lexicons.
	LabelTriple = "triple"

	// HitAny and HitNone select the sentences with and without a hit.
	HitAny  = "any"
	HitNone = "none"
)

// Registry is the ordered collection of active lexicons of a run. The
// registration order is the match order of the classifier: required
// lexicons first, then optional ones in discovery order.
type Registry struct {
	lexicons []*Lexicon
	byName   map[string]*Lexicon
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Lexicon{}}
}

// Register appends a lexicon. Names must be unique and cannot collide with
// the combined labels or the hit selectors.
func (r *Registry) Register(lx *Lexicon) error {
	if lx == nil {
		return fmt.Errorf("nil lexicon")
	}

	if lx.Name == "" {
		return fmt.Errorf("lexicon without name")
	}

	switch lx.Name {
	case LabelBoth, LabelTriple, HitAny, HitNone:
		return fmt.Errorf("lexicon name %q is reserved", lx.Name)
	}

	if _, ok := r.byName[lx.Name]; ok {
		return fmt.Errorf("lexicon %q already registered", lx.Name)
	}

	r.lexicons = append(r.lexicons, lx)
	r.byName[lx.Name] = lx
	return nil
}

// Lexicons returns the active lexicons in registration order.
func (r *Registry) Lexicons() []*Lexicon {
	return r.lexicons
}

// Names returns the names of the active lexicons in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.lexicons))
	for _, lx := range r.lexicons {
		names = append(names, lx.Name)
	}
	return names
}

func (r *Registry) Len() int {
	return len(r.lexicons)
}

func (r *Registry) Get(name string) (*Lexicon, bool) {
	lx, ok := r.byName[name]
	return lx, ok
}

// Labels returns every combined label a classification can carry: the
// lexicon names in order, then "both" and "triple".
func (r *Registry) Labels() []string {
	return Labels(r.Names())
}

// Labels returns the combined labels for the given ordered lexicon names.
func Labels(names []string) []string {
	labels := make([]string, 0, len(names)+2)
	labels = append(labels, names...)
	return append(labels, LabelBoth, LabelTriple)
}

// Label derives the combined label from the ordered matched lexicon names.
// It returns "" when nothing matched.
func Label(matched []string) string {
	switch len(matched) {
	case 0:
		return ""
	case 1:
		return matched[0]
	case 2:
		return LabelBoth
	}

	return LabelTriple
}
