// Package seqlib compiles sequence documents to SVG in one call.
package seqlib

import (
	"bytes"
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/seqdiag/lib/log"
	"oss.terrastruct.com/seqdiag/lib/textmeasure"
	"oss.terrastruct.com/seqdiag/seqcompiler"
	"oss.terrastruct.com/seqdiag/seqdiagram"
	"oss.terrastruct.com/seqdiag/seqrenderers/seqsvg"
)

type CompileOptions struct {
	// Path names the input in errors.
	Path string
	// Ruler measures text. A nil Ruler loads the default font.
	Ruler  *textmeasure.Ruler
	Config *seqdiagram.Config

	RenderOpts *seqsvg.RenderOpts
}

// Compile parses input, lays it out and renders it.
func Compile(ctx context.Context, input []byte, opts *CompileOptions) (*seqdiagram.Diagram, []byte, error) {
	if opts == nil {
		opts = &CompileOptions{}
	}
	path := opts.Path
	if path == "" {
		path = "index.yaml"
	}
	ctx = log.Named(ctx, "seqlib")

	seq, err := seqcompiler.Compile(path, bytes.NewReader(input))
	if err != nil {
		return nil, nil, err
	}

	ruler := opts.Ruler
	if ruler == nil {
		ruler, err = textmeasure.NewRuler()
		if err != nil {
			return nil, nil, err
		}
	}

	d := seqdiagram.New(seq, opts.Config)
	err = d.Layout(ruler)
	if err != nil {
		return nil, nil, err
	}
	size, err := d.ComputedSize()
	if err != nil {
		return nil, nil, err
	}
	parts := d.Parts()
	log.Debug(ctx, "laid out sequence diagram",
		slog.F("path", path),
		slog.F("width", size.Width),
		slog.F("height", size.Height),
		slog.F("entities", len(parts.Entities)),
		slog.F("messages", len(parts.Messages)),
		slog.F("activation_bars", len(parts.ActivationBars)),
	)

	svg, err := seqsvg.Render(d, ruler, opts.RenderOpts)
	if err != nil {
		return nil, nil, err
	}
	return d, svg, nil
}
