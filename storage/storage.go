package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/lexicon"
	sent "github.com/revelaction/lexhit/sentence"
)

var (
	// ErrMissingInput is returned when a required upstream table or a
	// required lexicon is absent. It is fatal for the run.
	ErrMissingInput = errors.New("missing input")

	// ErrNotFound is returned by a LexiconReader for an absent lexicon.
	ErrNotFound = errors.New("not found")
)

// CorpusReader reads the output of the annotator.
type CorpusReader interface {
	// ReadCorpus returns the complete sentence list and the token stream.
	ReadCorpus(ctx context.Context) (sent.Corpus, error)
}

// LexiconReader defines read operations for lexicon sources
type LexiconReader interface {
	// Names returns the names of all available lexicons, sorted.
	Names() ([]string, error)

	// Read parses the named lexicon. It returns an error wrapping
	// ErrNotFound if there is no source for the name.
	Read(name string) (*lexicon.Lexicon, error)
}

// ResultWriter persists the aggregates of a run.
type ResultWriter interface {
	WriteResult(res detect.Result, top int) error
}

// Selection names the lexicons of a run.
type Selection struct {
	// Required lexicons must be present.
	Required []string

	// Optional lexicons are skipped when absent.
	Optional []string

	// Discover appends every other available lexicon as optional, sorted
	// by name.
	Discover bool
}

// LoadRegistry resolves a Selection into the ordered Registry of active
// lexicons: required first, then optional in order, then discovered ones.
// A present but malformed lexicon is always an error. onSkip, if not nil,
// is called for each absent optional lexicon.
func LoadRegistry(lr LexiconReader, s Selection, onSkip func(name string)) (*lexicon.Registry, error) {
	r := lexicon.NewRegistry()

	for _, name := range s.Required {
		lx, err := lr.Read(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: required lexicon %q", ErrMissingInput, name)
			}
			return nil, err
		}
		if err := r.Register(lx); err != nil {
			return nil, err
		}
	}

	optional := append([]string{}, s.Optional...)
	if s.Discover {
		names, err := lr.Names()
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if !contains(s.Required, name) && !contains(optional, name) {
				optional = append(optional, name)
			}
		}
	}

	for _, name := range optional {
		if _, ok := r.Get(name); ok {
			continue
		}

		lx, err := lr.Read(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				if onSkip != nil {
					onSkip(name)
				}
				continue
			}
			return nil, err
		}
		if err := r.Register(lx); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func contains(sl []string, s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}
