// Package seqtarget defines what a sequence diagram needs from a drawing backend.
package seqtarget

import (
	"oss.terrastruct.com/seqdiag/lib/geo"
)

type LineMarker int

const (
	NoMarker LineMarker = iota
	ArrowOpen
	ArrowFull
	CircleFull
	ArrowIntoCircleFull
)

func (m LineMarker) String() string {
	switch m {
	case ArrowOpen:
		return "arrow-open"
	case ArrowFull:
		return "arrow-full"
	case CircleFull:
		return "circle-full"
	case ArrowIntoCircleFull:
		return "arrow-into-circle-full"
	default:
		return "none"
	}
}

// StrokeOptions apply to boxes, lines and paths. A zero LineWidth means 1.
type StrokeOptions struct {
	LineWidth float64
	Dashed    bool
}

func (o StrokeOptions) Width() float64 {
	if o.LineWidth <= 0 {
		return 1
	}
	return o.LineWidth
}

type RenderAttributes interface {
	MeasureText(text string, fontSize float64) geo.Size
}

// Renderer draws onto a surface. Coordinates are in diagram space, origin at the top left.
type Renderer interface {
	RenderAttributes

	RenderBox(topLeft *geo.Point, size geo.Size, opts StrokeOptions)
	// RenderPolyline draws a line through points with start marking points[0] and end
	// marking the last point. Fewer than 2 points draw nothing.
	RenderPolyline(points []*geo.Point, start, end LineMarker, opts StrokeOptions)
	// RenderPath draws SVG path data translated by offset.
	RenderPath(data string, offset *geo.Point, opts StrokeOptions)
	// RenderText draws text with its baseline starting at pos.
	RenderText(text string, pos *geo.Point, fontSize float64)
}

// DirectRenderer produces its output in one pass: Prepare, any number of Render calls, Finish.
type DirectRenderer[T any] interface {
	Renderer

	Prepare(canvas geo.Size)
	Finish() (T, error)
}
