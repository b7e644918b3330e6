// Package color parses CSS colors and derives the secondary colors of a diagram.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Black = "#000000"
	White = "#ffffff"

	// Special
	Empty = ""
	None  = "none"
)

func parse(colorString string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}

// Normalize returns colorString as a lowercase hex color. None and the empty string are
// returned unchanged.
func Normalize(colorString string) (string, error) {
	if colorString == Empty || colorString == None {
		return colorString, nil
	}
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return c.HexString(), nil
}

// Blend mixes from into to in the Lab space. t of 0 is from and 1 is to.
func Blend(from, to string, t float64) (string, error) {
	c1, err := parse(from)
	if err != nil {
		return "", err
	}
	c2, err := parse(to)
	if err != nil {
		return "", err
	}
	return c1.BlendLab(c2, t).Clamped().Hex(), nil
}
