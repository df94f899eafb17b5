// Package config loads the project configuration of lexhit from a TOML
// file and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/revelaction/lexhit/file"
)

// Config is the content of lexhit.toml. Zero values are replaced by the
// defaults of the file package.
//
//	results_dir = "./results/"
//	lexicon_dir = "./lexicons/"
//	required    = ["transgression", "punishment"]
//	optional    = ["reward"]
//	top         = 15
type Config struct {
	// ResultsDir holds the annotator tables and, by default, the output.
	ResultsDir string `toml:"results_dir"`
	LexiconDir string `toml:"lexicon_dir"`

	// Sentences and Tokens default to files in ResultsDir.
	Sentences string `toml:"sentences"`
	Tokens    string `toml:"tokens"`

	// Output is a result directory or a SQLite database file. Defaults to
	// ResultsDir.
	Output string `toml:"output"`

	Required []string `toml:"required"`
	Optional []string `toml:"optional"`

	// Discover adds every other lexicon source of LexiconDir as optional.
	Discover bool `toml:"discover"`

	// Top is the number of lemmas kept per frequency list. 0 keeps all.
	Top int `toml:"top"`

	LogLevel string `toml:"log_level"`
}

const DefaultTop = 15

func Default() Config {
	return Config{
		ResultsDir: file.ResultDir,
		LexiconDir: file.LexiconDir,
		Required:   append([]string{}, file.DefaultRequired...),
		Optional:   append([]string{}, file.DefaultOptional...),
		Top:        DefaultTop,
		LogLevel:   "warn",
	}
}

// Load decodes the TOML file at path over the defaults. Unknown keys are an
// error. A missing file is an error wrapping os.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOptional is Load, returning the defaults when the file does not
// exist.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadEnv loads the variables of a .env file into the environment, without
// overriding variables already set. A missing file is ignored.
func LoadEnv(path string) error {
	ok, err := file.Exists(path)
	if err != nil || !ok {
		return err
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (c Config) Validate() error {
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}

	seen := map[string]bool{}
	for _, name := range append(append([]string{}, c.Required...), c.Optional...) {
		if strings.TrimSpace(name) == "" {
			return errors.New("empty lexicon name")
		}
		if seen[name] {
			return fmt.Errorf("lexicon %q listed twice", name)
		}
		seen[name] = true
	}

	if len(c.Required) == 0 && len(c.Optional) == 0 && !c.Discover {
		return errors.New("no lexicon selected")
	}

	return nil
}

// SentencesPath returns the path of the sentence table.
func (c Config) SentencesPath() string {
	if c.Sentences != "" {
		return c.Sentences
	}
	return filepath.Join(c.ResultsDir, file.SentencesFile)
}

// TokensPath returns the path of the token table.
func (c Config) TokensPath() string {
	if c.Tokens != "" {
		return c.Tokens
	}
	return filepath.Join(c.ResultsDir, file.TokensFile)
}

// OutputPath returns the result directory or database path.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.ResultsDir
}
