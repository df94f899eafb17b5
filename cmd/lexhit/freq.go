package main

import (
	"fmt"
	"strings"
)

func freqCommand(opts RunOptions, label string, byLexicon bool, ui UI) error {
	res, _, err := runDetection(opts)
	if err != nil {
		return err
	}

	t := res.Frequencies
	names := t.Labels()
	top := t.Top
	if byLexicon {
		names = t.Lexicons()
		top = t.TopLexicon
	}

	if label != "" {
		if !contains(names, label) {
			return fmt.Errorf("unknown label %q, expected one of: %s", label, strings.Join(names, ", "))
		}
		names = []string{label}
	}

	r := newRenderer(opts, ui)
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(ui.Out)
		}
		r.Frequencies(name, top(name, opts.Config.Top))
	}

	return nil
}

func contains(sl []string, s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}
