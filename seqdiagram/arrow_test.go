package seqdiagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/seqdiag/lib/geo"
)

func TestArrowPoints(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	testCases := []struct {
		name      string
		from      *BarLocation
		to        *BarLocation
		headWidth float64
		exp       []*geo.Point
	}{
		{
			name: "found",
			to:   &BarLocation{X: 200, Level: 1},
			exp:  []*geo.Point{geo.NewPoint(112.5, 10), geo.NewPoint(192.5, 10)},
		},
		{
			name: "lost",
			from: &BarLocation{X: 200, Level: 2},
			exp:  []*geo.Point{geo.NewPoint(200, 10), geo.NewPoint(120, 10)},
		},
		{
			name:      "create_ltr",
			from:      &BarLocation{X: 100, Level: 1},
			to:        &BarLocation{X: 300, Level: 0},
			headWidth: 60,
			exp:       []*geo.Point{geo.NewPoint(107.5, 10), geo.NewPoint(270, 10)},
		},
		{
			name:      "create_rtl",
			from:      &BarLocation{X: 300, Level: 1},
			to:        &BarLocation{X: 100, Level: 0},
			headWidth: 60,
			exp:       []*geo.Point{geo.NewPoint(292.5, 10), geo.NewPoint(130, 10)},
		},
		{
			name: "self",
			from: &BarLocation{X: 100, Level: 1},
			to:   &BarLocation{X: 100, Level: 2},
			exp: []*geo.Point{
				geo.NewPoint(107.5, 10),
				geo.NewPoint(137.5, 10),
				geo.NewPoint(137.5, 40),
				geo.NewPoint(115, 40),
			},
		},
		{
			name: "regular_ltr",
			from: &BarLocation{X: 100, Level: 0},
			to:   &BarLocation{X: 300, Level: 1},
			exp:  []*geo.Point{geo.NewPoint(100, 10), geo.NewPoint(292.5, 10)},
		},
		{
			name: "regular_rtl",
			from: &BarLocation{X: 300, Level: 2},
			to:   &BarLocation{X: 100, Level: 1},
			exp:  []*geo.Point{geo.NewPoint(300, 10), geo.NewPoint(107.5, 10)},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			points, err := ArrowPoints(cfg, 10, tc.from, tc.to, tc.headWidth)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, points)
		})
	}

	_, err := ArrowPoints(cfg, 10, nil, nil, 0)
	assert.ErrorIs(t, err, ErrNoEndpoints)
}

func TestLabelAnchor(t *testing.T) {
	t.Parallel()

	bb := geo.NewBox(geo.NewPoint(10, 20), 100, 30)
	assert.Equal(t, geo.NewPoint(60, 29), labelAnchor(bb, arrowLabelAlign))
	assert.Equal(t, geo.NewPoint(116, 35), labelAnchor(bb, selfCallLabelAlign))
	assert.Equal(t, geo.NewPoint(4, 41), labelAnchor(bb, TextAlignment{AlignLeft, AlignBelow}))
}
