package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a lexicon source does not have the
// expected shape: a mapping of category keys to lists of strings.
var ErrMalformed = errors.New("malformed lexicon")

// Format is the encoding of a lexicon source.
type Format int

const (
	JSON Format = iota
	YAML
)

// Extensions lists the file extensions accepted for lexicon sources, in
// lookup order.
var Extensions = []string{".json", ".yaml", ".yml"}

// FormatOf returns the format for a lexicon file path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return 0, fmt.Errorf("unsupported lexicon extension: %s", path)
}

// Lexicon is a named word list partitioned by category. A Lexicon is
// immutable once parsed.
type Lexicon struct {
	Name string

	lemmas map[Category]map[string]struct{}
}

// HasLemma reports whether lemma is in the category set of the lexicon.
// The lemma must already be normalized.
func (l *Lexicon) HasLemma(c Category, lemma string) bool {
	_, ok := l.lemmas[c][lemma]
	return ok
}

// Size returns the number of distinct lemmas of the category.
func (l *Lexicon) Size(c Category) int {
	return len(l.lemmas[c])
}

// Lemmas returns the lemmas of a category, sorted.
func (l *Lexicon) Lemmas(c Category) []string {
	out := make([]string, 0, len(l.lemmas[c]))
	for lemma := range l.lemmas[c] {
		out = append(out, lemma)
	}
	sort.Strings(out)
	return out
}

// Load reads and parses the lexicon source at path.
func Load(name, path string) (*Lexicon, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lx, err := Parse(name, data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lx, nil
}

// Parse builds a Lexicon from an encoded source. Absent category keys are
// empty sets; any other key is ignored.
func Parse(name string, data []byte, format Format) (*Lexicon, error) {
	var doc any
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrMalformed, name, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrMalformed, name, err)
		}
	default:
		return nil, fmt.Errorf("unknown lexicon format %d", format)
	}

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrMalformed, name, err)
	}

	// validate accepts only mappings
	m, _ := doc.(map[string]any)

	lx := &Lexicon{
		Name:   name,
		lemmas: make(map[Category]map[string]struct{}, len(Categories)),
	}

	n := NewNormalizer()
	for _, c := range Categories {
		set := map[string]struct{}{}
		lx.lemmas[c] = set

		raw, ok := m[c.key()]
		if !ok {
			continue
		}

		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w %q: %s must be a list of strings", ErrMalformed, name, c.key())
		}

		for i, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w %q: %s[%d] is not a string", ErrMalformed, name, c.key(), i)
			}

			if lemma := n.Normalize(s); lemma != "" {
				set[lemma] = struct{}{}
			}
		}
	}

	return lx, nil
}

// Normalizer folds lemmas to the form used for lookup: NFC, lower case,
// trimmed. A Normalizer is not safe for concurrent use.
type Normalizer struct {
	lower cases.Caser
}

func NewNormalizer() *Normalizer {
	return &Normalizer{lower: cases.Lower(language.Und)}
}

func (n *Normalizer) Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	return n.lower.String(norm.NFC.String(s))
}

// Normalize is a convenience for one-off normalization.
func Normalize(s string) string {
	return NewNormalizer().Normalize(s)
}
