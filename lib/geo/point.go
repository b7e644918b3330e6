package geo

import (
	"fmt"
	"strings"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

var Origin = Point{}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

// Translate returns a new point shifted by dx and dy.
func (p *Point) Translate(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}

func (p *Point) WithX(x float64) *Point {
	return NewPoint(x, p.Y)
}

func (p *Point) WithY(y float64) *Point {
	return NewPoint(p.X, y)
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

type Points []*Point

func (points Points) ToString() string {
	strs := make([]string, 0, len(points))
	for _, p := range points {
		strs = append(strs, p.ToString())
	}
	return strings.Join(strs, ", ")
}
