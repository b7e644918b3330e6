// Package svg holds helpers for writing SVG by hand.
package svg

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"oss.terrastruct.com/seqdiag/lib/geo"
)

func EscapeText(text string) string {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(text))
	return buf.String()
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// Num formats f for an attribute value, rounded to 4 decimals.
func Num(f float64) string {
	f = chopPrecision(f)
	if f == 0 {
		// Avoids -0.
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Points formats points for the points attribute of a polyline.
func Points(points []*geo.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = Num(p.X) + "," + Num(p.Y)
	}
	return strings.Join(parts, " ")
}
