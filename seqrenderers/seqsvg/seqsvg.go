// Package seqsvg draws laid out sequence diagrams as standalone SVG documents.
package seqsvg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/image/font/gofont/goregular"

	"oss.terrastruct.com/seqdiag/lib/color"
	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/lib/svg"
	"oss.terrastruct.com/seqdiag/seqdiagram"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

const (
	DEFAULT_PADDING    = 100
	DEFAULT_FOREGROUND = color.Black
	DEFAULT_BACKGROUND = color.White

	fontFamily = "seqdiag-go-regular"
	// lifelineFade is how far lifelines are blended from the foreground towards the background.
	lifelineFade = .4
)

var ErrNotPrepared = errors.New("renderer not prepared")

type RenderOpts struct {
	Pad   *int64
	Scale *float64
	// Foreground strokes lines and text. Background fills boxes and the canvas; "none"
	// leaves the canvas transparent.
	Foreground string
	Background string
	// Bundle embeds the font text was measured with.
	Bundle bool
}

// Renderer writes SVG elements as they are drawn. Drawing before Prepare is a no-op
// and Finish then reports ErrNotPrepared.
type Renderer struct {
	attr seqtarget.RenderAttributes

	pad    float64
	scale  float64
	fg     string
	bg     string
	faded  string
	bundle bool

	canvas   geo.Size
	prepared bool
	body     *bytes.Buffer
	markers  map[seqtarget.LineMarker]struct{}
}

var _ seqtarget.DirectRenderer[[]byte] = &Renderer{}

// NewRenderer returns a Renderer measuring text with attr. A nil opts uses the defaults.
func NewRenderer(attr seqtarget.RenderAttributes, opts *RenderOpts) (*Renderer, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	r := &Renderer{
		attr:   attr,
		pad:    DEFAULT_PADDING,
		scale:  1,
		fg:     DEFAULT_FOREGROUND,
		bg:     DEFAULT_BACKGROUND,
		bundle: opts.Bundle,
	}
	if opts.Pad != nil {
		if *opts.Pad < 0 {
			return nil, fmt.Errorf("negative padding %d", *opts.Pad)
		}
		r.pad = float64(*opts.Pad)
	}
	if opts.Scale != nil && *opts.Scale > 0 {
		r.scale = *opts.Scale
	}

	var err error
	if opts.Foreground != "" {
		r.fg, err = color.Normalize(opts.Foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		if r.fg == color.None {
			return nil, errors.New(`foreground cannot be "none"`)
		}
	}
	if opts.Background != "" {
		r.bg, err = color.Normalize(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	r.faded = r.fg
	if r.bg != color.None {
		r.faded, err = color.Blend(r.fg, r.bg, lifelineFade)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) MeasureText(text string, fontSize float64) geo.Size {
	return r.attr.MeasureText(text, fontSize)
}

// Prepare starts a new document for a diagram of size canvas.
func (r *Renderer) Prepare(canvas geo.Size) {
	r.canvas = canvas
	r.body = &bytes.Buffer{}
	r.markers = make(map[seqtarget.LineMarker]struct{})
	r.prepared = true
}

func strokeAttrs(stroke string, opts seqtarget.StrokeOptions) string {
	s := fmt.Sprintf(`stroke="%s" stroke-width="%s"`, stroke, svg.Num(opts.Width()))
	if opts.Dashed {
		s += ` stroke-dasharray="4"`
	}
	return s
}

func (r *Renderer) fill() string {
	if r.bg == color.None {
		return color.None
	}
	return r.bg
}

func (r *Renderer) RenderBox(topLeft *geo.Point, size geo.Size, opts seqtarget.StrokeOptions) {
	if !r.prepared {
		return
	}
	fmt.Fprintf(r.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" %s />`,
		svg.Num(topLeft.X), svg.Num(topLeft.Y), svg.Num(size.Width), svg.Num(size.Height),
		r.fill(), strokeAttrs(r.fg, opts),
	)
	r.body.WriteByte('\n')
}

func (r *Renderer) RenderPolyline(points []*geo.Point, start, end seqtarget.LineMarker, opts seqtarget.StrokeOptions) {
	if !r.prepared || len(points) < 2 {
		return
	}
	stroke := r.fg
	class := "message"
	if start == seqtarget.NoMarker && end == seqtarget.NoMarker && opts.Dashed {
		// Lifelines are the only unmarked dashed lines.
		stroke = r.faded
		class = "lifeline"
	}
	fmt.Fprintf(r.body, `<polyline class="%s" points="%s" fill="none" %s%s%s />`,
		class, svg.Points(points), strokeAttrs(stroke, opts),
		r.markerAttr("marker-start", start), r.markerAttr("marker-end", end),
	)
	r.body.WriteByte('\n')
}

func (r *Renderer) RenderPath(data string, offset *geo.Point, opts seqtarget.StrokeOptions) {
	if !r.prepared {
		return
	}
	fmt.Fprintf(r.body, `<path d="%s" transform="translate(%s %s)" fill="none" %s />`,
		data, svg.Num(offset.X), svg.Num(offset.Y), strokeAttrs(r.fg, opts),
	)
	r.body.WriteByte('\n')
}

func (r *Renderer) RenderText(text string, pos *geo.Point, fontSize float64) {
	if !r.prepared {
		return
	}
	fmt.Fprintf(r.body, `<text x="%s" y="%s" font-size="%s" fill="%s">%s</text>`,
		svg.Num(pos.X), svg.Num(pos.Y), svg.Num(fontSize), r.fg, svg.EscapeText(text),
	)
	r.body.WriteByte('\n')
}

// Finish returns the document. The renderer must be prepared again before reuse.
func (r *Renderer) Finish() ([]byte, error) {
	if !r.prepared {
		return nil, ErrNotPrepared
	}
	r.prepared = false

	left := -r.pad
	top := -r.pad
	width := r.canvas.Width + 2*r.pad
	height := r.canvas.Height + 2*r.pad

	buf := &bytes.Buffer{}
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s" font-family="%s, sans-serif">`,
		svg.Num(width*r.scale), svg.Num(height*r.scale),
		svg.Num(left), svg.Num(top), svg.Num(width), svg.Num(height),
		fontFamily,
	)
	buf.WriteByte('\n')
	if r.bundle {
		fmt.Fprintf(buf, `<style type="text/css"><![CDATA[@font-face { font-family: %s; src: url("data:font/ttf;base64,%s"); }]]></style>`,
			fontFamily, base64.StdEncoding.EncodeToString(goregular.TTF),
		)
		buf.WriteByte('\n')
	}
	if r.bg != color.None {
		fmt.Fprintf(buf, `<rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			svg.Num(left), svg.Num(top), svg.Num(width), svg.Num(height), r.bg,
		)
		buf.WriteByte('\n')
	}
	r.writeMarkers(buf)
	buf.Write(r.body.Bytes())
	buf.WriteString("</svg>\n")

	r.body = nil
	r.markers = nil
	return buf.Bytes(), nil
}

// Render draws d, which must be laid out, into an SVG document.
func Render(d *seqdiagram.Diagram, attr seqtarget.RenderAttributes, opts *RenderOpts) ([]byte, error) {
	size, err := d.ComputedSize()
	if err != nil {
		return nil, err
	}
	r, err := NewRenderer(attr, opts)
	if err != nil {
		return nil, err
	}
	r.Prepare(size)
	err = d.Draw(r)
	if err != nil {
		return nil, err
	}
	return r.Finish()
}
