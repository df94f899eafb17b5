package main

import (
	"fmt"

	"github.com/revelaction/lexhit/detect"
	"github.com/revelaction/lexhit/stat"
)

func lemmaCommand(opts RunOptions, lemma, pos string, ui UI) error {
	res, corpus, err := runDetection(opts)
	if err != nil {
		return err
	}

	ids := detect.SentencesWithLemma(corpus, lemma, pos)
	if len(ids) == 0 {
		fmt.Fprintf(ui.Out, "no sentence with lemma %q\n", lemma)
		return nil
	}

	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var rows []stat.SentenceHits
	for _, row := range res.Sentences.Rows {
		if want[row.Id] {
			rows = append(rows, row)
		}
	}

	newRenderer(opts, ui).Sentences(rows)
	return nil
}
