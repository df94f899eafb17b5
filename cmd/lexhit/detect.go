package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/revelaction/lexhit/file"
	"github.com/revelaction/lexhit/render"
)

func detectCommand(opts RunOptions, export, format string, ui UI) (err error) {
	res, _, err := runDetection(opts)
	if err != nil {
		return err
	}

	out := opts.Config.OutputPath()
	w, closeFn, err := NewResultWriter(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := w.WriteResult(res, opts.Config.Top); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", out, err)
	}

	fmt.Fprintf(ui.Out, "✍  %d sentences, %d token hits, lexicons %s -> %s\n",
		len(res.Sentences.Rows), len(res.Tokens), strings.Join(res.Lexicons, ", "), out)

	if export == "" {
		return nil
	}

	if format == "" {
		format = exportFormat(export)
	}

	return exportReport(render.NewReport(res, opts.Config.Top), export, format, ui)
}

// exportFormat derives the report format from a file extension.
func exportFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return "msgpack"
	}
	return "json"
}

func exportReport(rep render.Report, path, format string, ui UI) error {
	if _, ok := render.ExporterFor(format, io.Discard); !ok {
		return fmt.Errorf("unknown report format %q", format)
	}

	err := file.WriteAtomic(path, func(w io.Writer) error {
		e, _ := render.ExporterFor(format, w)
		return e.Export(rep)
	})
	if err != nil {
		return fmt.Errorf("failed to export report to %s: %w", path, err)
	}

	fmt.Fprintf(ui.Out, "✍  report (%s) -> %s\n", format, path)
	return nil
}
