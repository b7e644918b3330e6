package geo

import (
	"fmt"
	"math"
)

// Size is a width and height pair. Negative components are clamped to 0.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewSize(width, height float64) Size {
	return Size{
		Width:  math.Max(0, width),
		Height: math.Max(0, height),
	}
}

// Add grows s by dw and dh.
func (s Size) Add(dw, dh float64) Size {
	return NewSize(s.Width+dw, s.Height+dh)
}

func (s Size) ToString() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}
