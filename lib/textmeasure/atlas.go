package textmeasure

import (
	"math"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type glyph struct {
	// minX and maxX bound the ink relative to the dot.
	minX    float64
	maxX    float64
	advance float64
	ok      bool
}

// atlas caches glyph metrics of one face.
type atlas struct {
	face       font.Face
	glyphs     map[rune]glyph
	ascent     float64
	descent    float64
	lineHeight float64
}

func newAtlas(face font.Face) *atlas {
	m := face.Metrics()
	return &atlas{
		face:       face,
		glyphs:     make(map[rune]glyph),
		ascent:     i2f(m.Ascent),
		descent:    i2f(m.Descent),
		lineHeight: i2f(m.Height),
	}
}

func (a *atlas) glyph(c rune) glyph {
	if g, ok := a.glyphs[c]; ok {
		return g
	}
	var g glyph
	if isPrintable(c) {
		b, advance, ok := a.face.GlyphBounds(c)
		if ok {
			g = glyph{
				minX:    i2f(fixed.I(b.Min.X.Floor())),
				maxX:    i2f(fixed.I(b.Max.X.Ceil())),
				advance: i2f(advance),
				ok:      true,
			}
		}
	}
	a.glyphs[c] = g
	return g
}

func (a *atlas) kern(prev, c rune) float64 {
	if prev < 0 {
		return 0
	}
	return i2f(a.face.Kern(prev, c))
}

// drawRune returns the horizontal ink extent of c placed at dotX and the next dot position.
// Runes missing from the font are measured as the replacement character.
func (a *atlas) drawRune(prev, c rune, dotX float64) (rect, float64) {
	g := a.glyph(c)
	if !g.ok {
		c = unicode.ReplacementChar
		g = a.glyph(c)
		if !g.ok {
			return emptyRect(), dotX
		}
	}
	dotX += a.kern(prev, c)
	bounds := emptyRect()
	if g.maxX > g.minX {
		bounds = rect{minX: dotX + g.minX, maxX: dotX + g.maxX}
	}
	return bounds, dotX + g.advance
}

func (a *atlas) nextTabStop(dotX float64) float64 {
	tab := a.glyph(' ').advance * TAB_SIZE
	if tab <= 0 {
		return dotX
	}
	return (math.Floor(dotX/tab) + 1) * tab
}

func i2f(i fixed.Int26_6) float64 {
	return float64(i) / (1 << 6)
}
