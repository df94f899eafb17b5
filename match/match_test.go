package match

import (
	"testing"

	"github.com/revelaction/lexhit/lexicon"
	sent "github.com/revelaction/lexhit/sentence"
)

func registry(t *testing.T, srcs ...[2]string) *lexicon.Registry {
	t.Helper()
	r := lexicon.NewRegistry()
	for _, src := range srcs {
		lx, err := lexicon.Parse(src[0], []byte(src[1]), lexicon.JSON)
		if err != nil {
			t.Fatalf("parse %s: %v", src[0], err)
		}
		if err := r.Register(lx); err != nil {
			t.Fatalf("register %s: %v", src[0], err)
		}
	}
	return r
}

func TestClassifySingle(t *testing.T) {
	r := registry(t,
		[2]string{"transgression", `{"verbs": ["steal"]}`},
		[2]string{"punishment", `{"verbs": ["hang"]}`},
	)
	c := NewClassifier(r)

	cl, ok := c.Classify(sent.Token{SentenceId: 0, Text: "stole", Lemma: "Steal ", Pos: "VERB"})
	if !ok {
		t.Fatalf("expected classification")
	}

	if cl.Label != "transgression" {
		t.Errorf("expected label transgression, got %q", cl.Label)
	}
	if len(cl.Lexicons) != 1 || cl.Lexicons[0] != "transgression" {
		t.Errorf("unexpected lexicons %v", cl.Lexicons)
	}
	if cl.Lemma != "steal" {
		t.Errorf("expected normalized lemma steal, got %q", cl.Lemma)
	}
	if cl.Category != lexicon.Verb {
		t.Errorf("expected verb category, got %s", cl.Category)
	}
}

func TestClassifyBothKeepsRegistryOrder(t *testing.T) {
	r := registry(t,
		[2]string{"transgression", `{"verbs": ["steal"]}`},
		[2]string{"punishment", `{"verbs": ["hang", "whip"]}`},
		[2]string{"reward", `{"verbs": ["whip"]}`},
	)
	c := NewClassifier(r)

	cl, ok := c.Classify(sent.Token{Lemma: "whip", Pos: "VERB"})
	if !ok {
		t.Fatalf("expected classification")
	}

	if cl.Label != lexicon.LabelBoth {
		t.Errorf("expected label both, got %q", cl.Label)
	}
	if len(cl.Lexicons) != 2 || cl.Lexicons[0] != "punishment" || cl.Lexicons[1] != "reward" {
		t.Errorf("expected [punishment reward], got %v", cl.Lexicons)
	}
	if !cl.Has("reward") || cl.Has("transgression") {
		t.Errorf("unexpected Has result for %v", cl.Lexicons)
	}
}

func TestClassifyTriple(t *testing.T) {
	r := registry(t,
		[2]string{"transgression", `{"nouns": ["fire"]}`},
		[2]string{"punishment", `{"nouns": ["fire"]}`},
		[2]string{"reward", `{"nouns": ["fire"]}`},
		[2]string{"magic", `{"nouns": ["fire"]}`},
	)
	c := NewClassifier(r)

	cl, ok := c.Classify(sent.Token{Lemma: "fire", Pos: "PROPN"})
	if !ok {
		t.Fatalf("expected classification")
	}
	if cl.Label != lexicon.LabelTriple {
		t.Errorf("expected triple, got %q", cl.Label)
	}
	if len(cl.Lexicons) != 4 {
		t.Errorf("expected 4 matched lexicons, got %v", cl.Lexicons)
	}
}

func TestClassifySkips(t *testing.T) {
	r := registry(t,
		[2]string{"transgression", `{"verbs": ["steal"], "nouns": ["steal"], "adjectives": ["steal"], "adverbs": ["steal"]}`},
	)
	c := NewClassifier(r)

	tests := []struct {
		name  string
		token sent.Token
	}{
		{"empty lemma", sent.Token{Lemma: "  ", Pos: "VERB"}},
		{"aux", sent.Token{Lemma: "steal", Pos: "AUX"}},
		{"det", sent.Token{Lemma: "steal", Pos: "DET"}},
		{"lower case tag", sent.Token{Lemma: "steal", Pos: "verb"}},
		{"no match", sent.Token{Lemma: "walk", Pos: "VERB"}},
	}

	for _, tt := range tests {
		if _, ok := c.Classify(tt.token); ok {
			t.Errorf("%s: expected skip", tt.name)
		}
	}
}

func TestClassifyCategoryIsExclusive(t *testing.T) {
	r := registry(t, [2]string{"punishment", `{"nouns": ["hang"]}`})
	c := NewClassifier(r)

	if _, ok := c.Classify(sent.Token{Lemma: "hang", Pos: "VERB"}); ok {
		t.Errorf("noun lemma must not match a verb token")
	}
	if _, ok := c.Classify(sent.Token{Lemma: "hang", Pos: "NOUN"}); !ok {
		t.Errorf("expected noun match")
	}
}

func TestClassifyAllKeepsOrder(t *testing.T) {
	r := registry(t,
		[2]string{"transgression", `{"verbs": ["steal", "lie"]}`},
		[2]string{"punishment", `{"verbs": ["hang"]}`},
	)
	c := NewClassifier(r)

	tokens := []sent.Token{
		{SentenceId: 0, Lemma: "lie", Pos: "VERB"},
		{SentenceId: 0, Lemma: "the", Pos: "DET"},
		{SentenceId: 0, Lemma: "hang", Pos: "VERB"},
		{SentenceId: 1, Lemma: "steal", Pos: "VERB"},
	}

	res := c.ClassifyAll(tokens)
	if len(res) != 3 {
		t.Fatalf("expected 3 classifications, got %d", len(res))
	}

	want := []string{"lie", "hang", "steal"}
	for i, w := range want {
		if res[i].Lemma != w {
			t.Errorf("position %d: expected %s, got %s", i, w, res[i].Lemma)
		}
	}
}
