package storage

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/revelaction/lexhit/lexicon"
)

// memReader is a LexiconReader over in-memory JSON sources.
type memReader map[string]string

func (m memReader) Names() ([]string, error) {
	var names []string
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m memReader) Read(name string) (*lexicon.Lexicon, error) {
	src, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return lexicon.Parse(name, []byte(src), lexicon.JSON)
}

func TestLoadRegistryOrder(t *testing.T) {
	lr := memReader{
		"transgression": `{"verbs": ["steal"]}`,
		"punishment":    `{"verbs": ["hang"]}`,
		"reward":        `{"verbs": ["bless"]}`,
		"magic":         `{"nouns": ["wand"]}`,
		"alchemy":       `{"nouns": ["gold"]}`,
	}

	r, err := LoadRegistry(lr, Selection{
		Required: []string{"transgression", "punishment"},
		Optional: []string{"reward"},
		Discover: true,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"transgression", "punishment", "reward", "alchemy", "magic"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestLoadRegistryOptionalAbsent(t *testing.T) {
	lr := memReader{
		"transgression": `{"verbs": ["steal"]}`,
		"punishment":    `{"verbs": ["hang"]}`,
	}

	var skipped []string
	r, err := LoadRegistry(lr, Selection{
		Required: []string{"transgression", "punishment"},
		Optional: []string{"reward"},
	}, func(name string) { skipped = append(skipped, name) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Len() != 2 {
		t.Errorf("expected 2 active lexicons, got %d", r.Len())
	}
	if len(skipped) != 1 || skipped[0] != "reward" {
		t.Errorf("expected reward skipped, got %v", skipped)
	}
}

func TestLoadRegistryRequiredAbsent(t *testing.T) {
	lr := memReader{"transgression": `{"verbs": ["steal"]}`}

	_, err := LoadRegistry(lr, Selection{Required: []string{"transgression", "punishment"}}, nil)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestLoadRegistryMalformedOptional(t *testing.T) {
	lr := memReader{
		"transgression": `{"verbs": ["steal"]}`,
		"reward":        `{"verbs": "bless"}`,
	}

	_, err := LoadRegistry(lr, Selection{
		Required: []string{"transgression"},
		Optional: []string{"reward"},
	}, nil)
	if !errors.Is(err, lexicon.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestLoadRegistryDiscoverReservedName(t *testing.T) {
	lr := memReader{
		"transgression": `{"verbs": ["steal"]}`,
		"punishment":    `{"verbs": ["hang"]}`,
		"none":          `{"verbs": ["rest"]}`,
	}

	_, err := LoadRegistry(lr, Selection{
		Required: []string{"transgression", "punishment"},
		Discover: true,
	}, nil)
	if err == nil {
		t.Fatalf("expected error for a lexicon named none")
	}
}
