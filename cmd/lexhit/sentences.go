package main

import (
	"fmt"
	"strings"
)

func sentencesCommand(opts RunOptions, category string, limit int, ui UI) error {
	res, _, err := runDetection(opts)
	if err != nil {
		return err
	}

	rows, ok := res.Sentences.Select(category)
	if !ok {
		return fmt.Errorf("unknown category %q, expected one of: %s", category, strings.Join(res.Sentences.SelectCategories(), ", "))
	}

	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	newRenderer(opts, ui).Sentences(rows)
	return nil
}
