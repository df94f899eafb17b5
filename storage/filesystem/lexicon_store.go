package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/lexhit/lexicon"
	"github.com/revelaction/lexhit/storage"
)

// LexiconStore reads lexicons from a directory, one file per lexicon named
// after it: transgression.json, reward.yaml...
type LexiconStore struct {
	root string
}

var _ storage.LexiconReader = (*LexiconStore)(nil)

func NewLexiconStore(root string) *LexiconStore {
	return &LexiconStore{root: root}
}

func (ls *LexiconStore) Names() ([]string, error) {
	files, err := os.ReadDir(ls.root)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	names := []string{}
	for _, file := range files {
		if file.IsDir() || !isLexiconFile(file.Name()) {
			continue
		}

		name := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Path returns the source file of a lexicon. Extensions are tried in
// lexicon.Extensions order.
func (ls *LexiconStore) Path(name string) (string, error) {
	for _, ext := range lexicon.Extensions {
		p := filepath.Join(ls.root, name+ext)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("lexicon %q in %s: %w", name, ls.root, storage.ErrNotFound)
}

func (ls *LexiconStore) Read(name string) (*lexicon.Lexicon, error) {
	p, err := ls.Path(name)
	if err != nil {
		return nil, err
	}

	return lexicon.Load(name, p)
}

func isLexiconFile(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range lexicon.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
