package lexicon

import "fmt"

// Category is the grammatical category a lexicon is partitioned by.
type Category int

const (
	Verb Category = iota
	Noun
	Adjective
	Adverb
)

// Categories lists all categories in their canonical order.
var Categories = []Category{Verb, Noun, Adjective, Adverb}

func (c Category) String() string {
	switch c {
	case Verb:
		return "verb"
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	}

	return ""
}

// key returns the lexicon source key holding the lemmas of the category.
func (c Category) key() string {
	return c.String() + "s"
}

// CategoryOf maps a universal POS tag to the category used for lexicon
// lookup. The second return value is false for tags that must be skipped.
//
// The table is fixed:
//
//	VERB  -> verb
//	NOUN  -> noun
//	PROPN -> noun
//	ADJ   -> adjective
//	ADV   -> adverb
func CategoryOf(pos string) (Category, bool) {
	switch pos {
	case "VERB":
		return Verb, true
	case "NOUN", "PROPN":
		return Noun, true
	case "ADJ":
		return Adjective, true
	case "ADV":
		return Adverb, true
	}

	return 0, false
}

func (c Category) MarshalText() ([]byte, error) {
	s := c.String()
	if s == "" {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(s), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	for _, cat := range Categories {
		if cat.String() == string(b) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(b))
}
