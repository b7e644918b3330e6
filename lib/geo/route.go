package geo

import (
	"math"
)

// Route is a polyline.
type Route []*Point

// BoundingBox returns the smallest axis-aligned box containing every point of the route.
// An empty route yields a zero box at the origin.
func (route Route) BoundingBox() *Box {
	if len(route) == 0 {
		return NewBox(NewPoint(0, 0), 0, 0)
	}
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range route {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}
