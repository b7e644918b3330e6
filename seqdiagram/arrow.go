package seqdiagram

import (
	"math"

	"oss.terrastruct.com/seqdiag/lib/geo"
)

// BarLocation is the lifeline x of an arrow end together with the activation level the arrow
// attaches at.
type BarLocation struct {
	X     float64
	Level int
}

func (c *Config) barLeft(b *BarLocation) float64 {
	return b.X + float64(b.Level-2)*c.indent()
}

func (c *Config) barRight(b *BarLocation) float64 {
	return b.X + float64(b.Level)*c.indent()
}

// ArrowPoints computes the polyline of a message arrow at height y.
//
// A nil from is a found message and a nil to a lost message. A target at level 0 has no bar
// yet, so the arrow ends at the side of the target head of width toHeadWidth instead.
func ArrowPoints(c *Config, y float64, from, to *BarLocation, toHeadWidth float64) ([]*geo.Point, error) {
	switch {
	case from == nil && to == nil:
		return nil, ErrNoEndpoints
	case from == nil:
		end := geo.NewPoint(c.barLeft(to), y)
		return []*geo.Point{end.Translate(-c.FoundWidth, 0), end}, nil
	case to == nil:
		start := geo.NewPoint(c.barLeft(from), y)
		return []*geo.Point{start, start.Translate(-c.FoundWidth, 0)}, nil
	case to.Level == 0:
		return createArrow(c, y, from, to.X, toHeadWidth), nil
	case from.X == to.X:
		return selfArrow(c, y, from, to), nil
	}

	if from.X < to.X {
		return []*geo.Point{
			geo.NewPoint(c.barRight(from), y),
			geo.NewPoint(c.barLeft(to), y),
		}, nil
	}
	return []*geo.Point{
		geo.NewPoint(c.barLeft(from), y),
		geo.NewPoint(c.barRight(to), y),
	}, nil
}

func createArrow(c *Config, y float64, from *BarLocation, toX, toHeadWidth float64) []*geo.Point {
	if from.X < toX {
		return []*geo.Point{
			geo.NewPoint(c.barRight(from), y),
			geo.NewPoint(toX-toHeadWidth/2, y),
		}
	}
	return []*geo.Point{
		geo.NewPoint(c.barLeft(from), y),
		geo.NewPoint(toX+toHeadWidth/2, y),
	}
}

func selfArrow(c *Config, y float64, from, to *BarLocation) []*geo.Point {
	fromEdge := c.barRight(from)
	toEdge := c.barRight(to)

	start := geo.NewPoint(fromEdge, y)
	topRight := geo.NewPoint(math.Min(fromEdge, toEdge)+c.SelfWidth, y)
	bottomRight := topRight.Translate(0, c.SelfHeight)
	end := geo.NewPoint(toEdge, y+c.SelfHeight)
	return []*geo.Point{start, topRight, bottomRight, end}
}
