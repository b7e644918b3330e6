// Package textmeasure measures text set in Go Regular.
//
// Glyph metrics come from the TrueType font; kerning and tab stops are honored. Grapheme
// clusters the font cannot measure one rune at a time (wide CJK characters, emoji sequences)
// are sized as a multiple of the width of a space.
package textmeasure

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font/gofont/goregular"

	"oss.terrastruct.com/seqdiag/lib/geo"
)

const TAB_SIZE = 4

// Ruler is not safe for concurrent use.
type Ruler struct {
	// LineHeightFactor scales the distance between consecutive lines.
	LineHeightFactor float64

	ttf   *truetype.Font
	faces map[float64]*atlas
}

func NewRuler() (*Ruler, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Ruler{
		LineHeightFactor: 1,
		ttf:              ttf,
		faces:            make(map[float64]*atlas),
	}, nil
}

func (r *Ruler) atlas(fontSize float64) *atlas {
	a, ok := r.faces[fontSize]
	if !ok {
		a = newAtlas(truetype.NewFace(r.ttf, &truetype.Options{Size: fontSize}))
		r.faces[fontSize] = a
	}
	return a
}

// MeasureText implements seqtarget.RenderAttributes. Sizes are rounded up to whole units.
func (r *Ruler) MeasureText(text string, fontSize float64) geo.Size {
	w, h := r.MeasurePrecise(fontSize, text)
	return geo.NewSize(math.Ceil(w), math.Ceil(h))
}

// MeasurePrecise returns the extent of the ink of s, with every line as tall as the font's
// ascent plus descent.
func (r *Ruler) MeasurePrecise(fontSize float64, s string) (width, height float64) {
	if fontSize <= 0 || s == "" {
		return 0, 0
	}
	a := r.atlas(fontSize)

	bounds := emptyRect()
	y := 0.
	for _, line := range strings.Split(s, "\n") {
		lb := r.measureLine(a, line)
		if !lb.empty() {
			bounds = bounds.union(rect{
				minX: lb.minX,
				maxX: lb.maxX,
				minY: y - a.descent,
				maxY: y + a.ascent,
			})
		}
		y -= r.LineHeightFactor * a.lineHeight
	}
	if bounds.empty() {
		return 0, 0
	}
	return bounds.w(), bounds.h()
}

func (r *Ruler) measureLine(a *atlas, line string) rect {
	bounds := emptyRect()
	dotX := 0.
	prev := rune(-1)

	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()
		if gr.Width() == 1 || (len(runes) == 1 && runes[0] < utf8.RuneSelf) {
			for _, c := range runes {
				if c == '\r' {
					dotX = 0
					prev = -1
					continue
				}
				if c == '\t' {
					dotX = a.nextTabStop(dotX)
					prev = -1
					continue
				}
				var gb rect
				gb, dotX = a.drawRune(prev, c, dotX)
				bounds = bounds.union(gb)
				prev = c
			}
			continue
		}
		// Clusters wider or narrower than one cell are sized off the space advance.
		w := a.glyph(' ').advance * float64(gr.Width())
		if w > 0 {
			bounds = bounds.union(rect{minX: dotX, maxX: dotX + w})
		}
		dotX += w
		prev = -1
	}
	return bounds
}

func isPrintable(c rune) bool {
	return unicode.IsPrint(c) || c == unicode.ReplacementChar
}
