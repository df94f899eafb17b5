package main

import (
	"fmt"

	"github.com/revelaction/lexhit/storage/filesystem"
)

func lexiconCommand(opts RunOptions, ui UI) error {
	registry, err := loadRegistry(opts.Config)
	if err != nil {
		return err
	}

	newRenderer(opts, ui).Lexicons(registry.Lexicons())
	return nil
}

// lexiconCheckCommand parses every lexicon source of the lexicon directory,
// selected or not.
func lexiconCheckCommand(opts RunOptions, ui UI) error {
	ls := filesystem.NewLexiconStore(opts.Config.LexiconDir)
	names, err := ls.Names()
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range names {
		if _, err := ls.Read(name); err != nil {
			fmt.Fprintf(ui.Out, "✗ %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(ui.Out, "✓ %s\n", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lexicons are invalid", failed, len(names))
	}

	return nil
}
