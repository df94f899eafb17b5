package main

import (
	"context"
	"io"
	"os"

	"github.com/gosuri/uiprogress"
	"golang.org/x/term"

	"github.com/revelaction/lexhit/config"
	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/file"
	"github.com/revelaction/lexhit/lexicon"
	sent "github.com/revelaction/lexhit/sentence"
	"github.com/revelaction/lexhit/storage"
	"github.com/revelaction/lexhit/storage/filesystem"
	"github.com/revelaction/lexhit/storage/sqlite/zombiezen"
)

// NewResultWriter returns the sink of the output path: a SQLite database
// for a .db file, a CSV directory otherwise. The returned func releases
// the sink.
func NewResultWriter(path string) (storage.ResultWriter, func() error, error) {
	if !file.IsDatabase(path) {
		return filesystem.NewResultStore(path), func() error { return nil }, nil
	}

	pool, err := zombiezen.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return zombiezen.NewResultStore(pool), pool.Close, nil
}

// loadRegistry resolves the configured lexicon selection.
func loadRegistry(cfg config.Config) (*lexicon.Registry, error) {
	sel := storage.Selection{
		Required: cfg.Required,
		Optional: cfg.Optional,
		Discover: cfg.Discover,
	}

	return storage.LoadRegistry(filesystem.NewLexiconStore(cfg.LexiconDir), sel, func(name string) {
		log.Warnf("optional lexicon %q not found in %s, skipped", name, cfg.LexiconDir)
	})
}

// runDetection loads the lexicons and the corpus and runs the detection.
// Nothing is written.
func runDetection(opts RunOptions) (detect.Result, sent.Corpus, error) {
	cfg := opts.Config

	registry, err := loadRegistry(cfg)
	if err != nil {
		return detect.Result{}, sent.Corpus{}, err
	}

	corpus, err := filesystem.NewCorpusStore(cfg.SentencesPath(), cfg.TokensPath()).ReadCorpus(context.Background())
	if err != nil {
		return detect.Result{}, sent.Corpus{}, err
	}

	log.Debugw("corpus loaded", "sentences", len(corpus.Sentences), "tokens", len(corpus.Tokens), "lexicons", registry.Names())

	d := detect.New(registry)

	if opts.Progress && len(corpus.Tokens) > 0 {
		// Start progress indicator
		uiprogress.Start()
		bar := uiprogress.AddBar(len(corpus.Tokens))
		bar.AppendCompleted()
		bar.PrependElapsed()

		d.OnToken = func(current, total int) {
			bar.Incr()
		}

		defer uiprogress.Stop()
	}

	return d.Run(corpus), corpus, nil
}

// isTerminal reports whether w is a terminal. The progress bar is only
// shown on a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
