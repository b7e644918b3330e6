package seqdiagram

import (
	"strings"

	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/lib/go2"
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

const (
	stickFigurePath = "M0,0 a8,8,0,1,0,0,16  M0,0 a8,8,0,1,1,0,16  M0,16 v20  M-15,22 h30  M-10,46 l10,-10 l10,10"
	destructionPath = "M-13,-13 L13,13 M-13,13 L13,-13"

	stickFigureWidth  = 30
	stickFigureHeight = 46
	actorNameSpacing  = 4

	boxLineWidth         = 2
	stickFigureLineWidth = 2
	destructionLineWidth = 3

	labelSpacing = 6
)

type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignAbove VAlign = iota
	AlignMiddle
	AlignBelow
)

// TextAlignment says where text sits relative to its anchor point.
type TextAlignment struct {
	H HAlign
	V VAlign
}

var (
	selfCallLabelAlign = TextAlignment{AlignRight, AlignMiddle}
	arrowLabelAlign    = TextAlignment{AlignCenter, AlignAbove}
	componentNameAlign = TextAlignment{AlignCenter, AlignMiddle}
	actorNameAlign     = TextAlignment{AlignCenter, AlignBelow}
)

// textOffset returns the translation from the anchor to the start of the baseline.
func textOffset(align TextAlignment, size geo.Size) (dx, dy float64) {
	switch align.H {
	case AlignLeft:
		dx = -size.Width
	case AlignCenter:
		dx = -size.Width / 2
	}
	switch align.V {
	case AlignMiddle:
		dy = size.Height / 2
	case AlignBelow:
		dy = size.Height
	}
	return dx, dy
}

type textDrawable struct {
	text     string
	fontSize float64
}

func (t textDrawable) measure(attr seqtarget.RenderAttributes) geo.Size {
	return attr.MeasureText(t.text, t.fontSize)
}

func (t textDrawable) draw(r seqtarget.Renderer, anchor *geo.Point, align TextAlignment) {
	dx, dy := textOffset(align, t.measure(r))
	r.RenderText(t.text, anchor.Translate(dx, dy), t.fontSize)
}

// headDrawable is the part of an entity above its lifeline.
type headDrawable interface {
	measure(attr seqtarget.RenderAttributes) geo.Size
	draw(r seqtarget.Renderer, topCenter *geo.Point)
}

func newHead(c *Config, e *seqgraph.Entity) headDrawable {
	name := textDrawable{text: e.Name, fontSize: c.FontSize}
	if e.Kind == seqgraph.Actor {
		return actorHead{name: name}
	}
	return componentHead{
		name:     name,
		paddingH: c.ComponentHeadPaddingH,
		paddingV: c.ComponentHeadPaddingV,
	}
}

type componentHead struct {
	name     textDrawable
	paddingH float64
	paddingV float64
}

func (h componentHead) measure(attr seqtarget.RenderAttributes) geo.Size {
	return h.name.measure(attr).Add(2*h.paddingH, 2*h.paddingV)
}

func (h componentHead) draw(r seqtarget.Renderer, topCenter *geo.Point) {
	size := h.measure(r)
	r.RenderBox(topCenter.Translate(-size.Width/2, 0), size, seqtarget.StrokeOptions{LineWidth: boxLineWidth})
	h.name.draw(r, topCenter.Translate(0, size.Height/2), componentNameAlign)
}

type actorHead struct {
	name textDrawable
}

func (h actorHead) measure(attr seqtarget.RenderAttributes) geo.Size {
	text := h.name.measure(attr)
	return geo.NewSize(
		go2.Max(text.Width, stickFigureWidth),
		stickFigureHeight+actorNameSpacing+text.Height,
	)
}

func (h actorHead) draw(r seqtarget.Renderer, topCenter *geo.Point) {
	r.RenderPath(stickFigurePath, topCenter, seqtarget.StrokeOptions{LineWidth: stickFigureLineWidth})
	h.name.draw(r, topCenter.Translate(0, stickFigureHeight+actorNameSpacing), actorNameAlign)
}

// arrowDrawable is a polyline with markers and an optional label.
type arrowDrawable struct {
	label     *textDrawable
	start     seqtarget.LineMarker
	end       seqtarget.LineMarker
	dashed    bool
	lineWidth float64
	align     TextAlignment
}

func newArrow(c *Config, m seqgraph.Message) *arrowDrawable {
	a := &arrowDrawable{
		start:     startMarker(m.Style()),
		end:       endMarker(m.Style()),
		dashed:    m.Style() == seqgraph.Reply || m.Style() == seqgraph.Create,
		lineWidth: c.LineWidthArrows,
		align:     arrowLabelAlign,
	}
	if label := strings.TrimSpace(m.Label()); label != "" {
		a.label = &textDrawable{text: label, fontSize: c.FontSize}
	}
	if seqgraph.IsSelf(m) {
		a.align = selfCallLabelAlign
	}
	return a
}

func startMarker(s seqgraph.MessageStyle) seqtarget.LineMarker {
	if s == seqgraph.Found {
		return seqtarget.CircleFull
	}
	return seqtarget.NoMarker
}

func endMarker(s seqgraph.MessageStyle) seqtarget.LineMarker {
	switch s {
	case seqgraph.Async, seqgraph.Reply, seqgraph.Create, seqgraph.Destroy:
		return seqtarget.ArrowOpen
	case seqgraph.Lost:
		return seqtarget.ArrowIntoCircleFull
	default:
		return seqtarget.ArrowFull
	}
}

func (a *arrowDrawable) measureLabel(attr seqtarget.RenderAttributes) geo.Size {
	if a.label == nil {
		return geo.Size{}
	}
	return a.label.measure(attr)
}

func (a *arrowDrawable) draw(r seqtarget.Renderer, points []*geo.Point) {
	if len(points) < 2 {
		return
	}
	r.RenderPolyline(points, a.start, a.end, seqtarget.StrokeOptions{
		LineWidth: a.lineWidth,
		Dashed:    a.dashed,
	})
	if a.label != nil {
		a.label.draw(r, labelAnchor(geo.Route(points).BoundingBox(), a.align), a.align)
	}
}

func labelAnchor(bb *geo.Box, align TextAlignment) *geo.Point {
	x := bb.CenterX()
	switch align.H {
	case AlignLeft:
		x = bb.MinX() - labelSpacing
	case AlignRight:
		x = bb.MaxX() + labelSpacing
	}
	y := bb.CenterY()
	switch align.V {
	case AlignAbove:
		y -= labelSpacing
	case AlignBelow:
		y += labelSpacing
	}
	return geo.NewPoint(x, y)
}
