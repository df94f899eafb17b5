package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Default project layout, relative to the working directory.
const (
	LexiconDir = "./lexicons/"
	ResultDir  = "./results/"

	SentencesFile = "sentences.csv"
	TokensFile    = "tokens.csv"

	ConfigFile = "lexhit.toml"
	EnvFile    = ".env"
)

// DefaultRequired are the lexicons a run needs when none are configured.
var DefaultRequired = []string{"transgression", "punishment"}

// DefaultOptional are the lexicons used when their source exists.
var DefaultOptional = []string{"reward"}

// Exists reports whether path exists. Errors other than non existence are
// returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// IsDatabase reports whether an output path names a SQLite database file
// instead of a result directory.
func IsDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Pending is a file written under a temporary name in the directory of its
// final path. Commit moves it into place, Discard removes it.
type Pending struct {
	*os.File
	path string
}

func CreatePending(path string) (*Pending, error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return nil, err
	}
	return &Pending{File: f, path: path}, nil
}

// Finish makes the temporary file readable and closes it.
func (p *Pending) Finish() error {
	if err := p.Chmod(0644); err != nil {
		return err
	}
	return p.Close()
}

// Check fails if the final path cannot be replaced by a file.
func (p *Pending) Check() error {
	fi, err := os.Lstat(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", p.path)
	}
	return nil
}

func (p *Pending) Commit() error {
	return os.Rename(p.Name(), p.path)
}

func (p *Pending) Discard() {
	p.Close()
	os.Remove(p.Name())
}

// WriteAtomic writes path through fn. The previous content of path is kept
// if fn or any later step fails.
func WriteAtomic(path string, fn func(io.Writer) error) (err error) {
	p, err := CreatePending(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			p.Discard()
		}
	}()

	if err = fn(p); err != nil {
		return err
	}
	if err = p.Finish(); err != nil {
		return err
	}
	if err = p.Check(); err != nil {
		return err
	}
	return p.Commit()
}
