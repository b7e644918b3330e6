package textmeasure

import "math"

// rect is an axis-aligned extent. An empty rect has min > max.
type rect struct {
	minX, maxX float64
	minY, maxY float64
}

func emptyRect() rect {
	return rect{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
}

func (r rect) empty() bool {
	return r.minX > r.maxX
}

func (r rect) w() float64 {
	if r.empty() {
		return 0
	}
	return r.maxX - r.minX
}

func (r rect) h() float64 {
	if r.minY > r.maxY {
		return 0
	}
	return r.maxY - r.minY
}

// union ignores the vertical extent of r2 when it has none.
func (r rect) union(r2 rect) rect {
	if r2.empty() {
		return r
	}
	out := r
	out.minX = math.Min(out.minX, r2.minX)
	out.maxX = math.Max(out.maxX, r2.maxX)
	if r2.minY <= r2.maxY {
		out.minY = math.Min(out.minY, r2.minY)
		out.maxY = math.Max(out.maxY, r2.maxY)
	}
	return out
}
