package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		pos  string
		want Category
		ok   bool
	}{
		{"VERB", Verb, true},
		{"NOUN", Noun, true},
		{"PROPN", Noun, true},
		{"ADJ", Adjective, true},
		{"ADV", Adverb, true},
		{"AUX", 0, false},
		{"DET", 0, false},
		{"verb", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := CategoryOf(tt.pos)
		if ok != tt.ok {
			t.Errorf("CategoryOf(%q) ok = %v, want %v", tt.pos, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("CategoryOf(%q) = %s, want %s", tt.pos, got, tt.want)
		}
	}
}

func TestCategoryUnmarshalText(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("noun")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Noun {
		t.Errorf("expected noun, got %s", c)
	}

	if err := c.UnmarshalText([]byte("NOUN")); err == nil {
		t.Errorf("expected error for a POS tag")
	}
}

func TestParseNormalizesLemmas(t *testing.T) {
	lx, err := Parse("transgression", []byte(`{"verbs": [" Steal ", "LIE", ""], "nouns": ["Theft"]}`), JSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !lx.HasLemma(Verb, "steal") {
		t.Errorf("expected verb steal")
	}
	if !lx.HasLemma(Verb, "lie") {
		t.Errorf("expected verb lie")
	}
	if lx.HasLemma(Verb, "theft") {
		t.Errorf("theft must only be a noun")
	}
	if !lx.HasLemma(Noun, "theft") {
		t.Errorf("expected noun theft")
	}
	if lx.Size(Verb) != 2 {
		t.Errorf("expected 2 verbs, got %d", lx.Size(Verb))
	}
	if lx.Size(Adverb) != 0 {
		t.Errorf("missing category must be empty, got %d", lx.Size(Adverb))
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"string instead of list", `{"verbs": "hang"}`},
		{"non string element", `{"verbs": ["hang", 3]}`},
		{"not a mapping", `["hang"]`},
		{"invalid json", `{"verbs": [`},
		{"null", `null`},
	}

	for _, tt := range tests {
		_, err := Parse("punishment", []byte(tt.src), JSON)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", tt.name, err)
		}
	}
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	j, err := Parse("reward", []byte(`{"verbs": ["Reward", "bless"], "adjectives": ["kind"]}`), JSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}

	y, err := Parse("reward", []byte("verbs:\n  - Reward\n  - bless\nadjectives:\n  - kind\n"), YAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	for _, c := range Categories {
		jl, yl := j.Lemmas(c), y.Lemmas(c)
		if len(jl) != len(yl) {
			t.Fatalf("%s: json %v, yaml %v", c, jl, yl)
		}
		for i := range jl {
			if jl[i] != yl[i] {
				t.Errorf("%s: json %v, yaml %v", c, jl, yl)
			}
		}
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := Parse("reward", []byte("verbs: reward\n"), YAML)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "punishment.json")
	if err := os.WriteFile(path, []byte(`{"verbs": ["hang"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	lx, err := Load("punishment", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lx.Name != "punishment" || !lx.HasLemma(Verb, "hang") {
		t.Errorf("unexpected lexicon %+v", lx)
	}

	if _, err := Load("punishment", filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"transgression", "punishment", "reward"} {
		if err := r.Register(&Lexicon{Name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	if err := r.Register(&Lexicon{Name: "reward"}); err == nil {
		t.Errorf("expected duplicate error")
	}
	for _, name := range []string{LabelBoth, LabelTriple, HitAny, HitNone} {
		if err := r.Register(&Lexicon{Name: name}); err == nil {
			t.Errorf("expected reserved name error for %q", name)
		}
	}

	names := r.Names()
	want := []string{"transgression", "punishment", "reward"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
		}
	}

	labels := r.Labels()
	if labels[3] != LabelBoth || labels[4] != LabelTriple {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		matched []string
		want    string
	}{
		{nil, ""},
		{[]string{"punishment"}, "punishment"},
		{[]string{"punishment", "reward"}, LabelBoth},
		{[]string{"transgression", "punishment", "reward"}, LabelTriple},
		{[]string{"a", "b", "c", "d"}, LabelTriple},
	}

	for _, tt := range tests {
		if got := Label(tt.matched); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.matched, got, tt.want)
		}
	}
}
