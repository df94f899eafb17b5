package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/revelaction/lexhit/file"
	"github.com/revelaction/lexhit/render"
)

func newRenderer(opts RunOptions, ui UI) *render.Renderer {
	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor && !color.NoColor
	return r
}

func summaryCommand(opts RunOptions, format, out string, ui UI) error {
	res, _, err := runDetection(opts)
	if err != nil {
		return err
	}

	if out != "" {
		err := file.WriteAtomic(out, func(w io.Writer) error {
			render.NewRenderer(w).Summary(res.Stats(), res.Frequencies, opts.Config.Top)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to write summary to %s: %w", out, err)
		}
		log.Infof("summary written to %s", out)
	}

	if format == "text" {
		newRenderer(opts, ui).Summary(res.Stats(), res.Frequencies, opts.Config.Top)
		return nil
	}

	e, ok := render.ExporterFor(format, ui.Out)
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}

	return e.Export(render.NewReport(res, opts.Config.Top))
}
