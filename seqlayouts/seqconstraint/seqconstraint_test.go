package seqconstraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/seqdiag/seqlayouts/seqconstraint"
)

func newLayout(margin float64, dims ...float64) *seqconstraint.IndexedLayout {
	l := seqconstraint.NewIndexed(len(dims), seqconstraint.Options{ItemMargin: margin})
	for i, d := range dims {
		l.ApplyDimension(i, d)
	}
	return l
}

func TestIndexedLayout(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		margin float64
		dims   []float64
		apply  func(l *seqconstraint.IndexedLayout)
		total  float64
		items  []seqconstraint.Item
	}{
		{
			name:   "empty",
			margin: 10,
			items:  []seqconstraint.Item{},
		},
		{
			name:  "zero_size_no_margin",
			dims:  []float64{0, 0, 0},
			items: []seqconstraint.Item{{}, {}, {}},
		},
		{
			name:   "zero_size_margin",
			margin: 10,
			dims:   []float64{0, 0, 0},
			total:  20,
			items:  []seqconstraint.Item{{0, 0, 0}, {10, 10, 0}, {20, 20, 0}},
		},
		{
			name:   "sizes",
			margin: 10,
			dims:   []float64{15, 150, 1500},
			total:  1685,
			items:  []seqconstraint.Item{{0, 7.5, 15}, {25, 100, 150}, {185, 935, 1500}},
		},
		{
			name:   "largest_dimension",
			margin: 10,
			dims:   []float64{20, 32, 80},
			apply: func(l *seqconstraint.IndexedLayout) {
				l.ApplyDimension(1, 40)
				l.ApplyDimension(1, 36)
			},
			total: 160,
			items: []seqconstraint.Item{{0, 10, 20}, {30, 50, 40}, {80, 120, 80}},
		},
		{
			name:   "before_first",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply: func(l *seqconstraint.IndexedLayout) {
				l.ApplyBefore(0, 296)
				l.ApplyBefore(0, 300)
				l.ApplyBefore(0, 298)
			},
			total: 450,
			items: []seqconstraint.Item{{290, 300, 20}, {320, 340, 40}, {370, 410, 80}},
		},
		{
			name:   "between_0_1",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply:  func(l *seqconstraint.IndexedLayout) { l.ApplyBetween(0, 1, 300) },
			total:  420,
			items:  []seqconstraint.Item{{0, 10, 20}, {290, 310, 40}, {340, 380, 80}},
		},
		{
			name:   "between_1_0",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply:  func(l *seqconstraint.IndexedLayout) { l.ApplyBetween(1, 0, 300) },
			total:  420,
			items:  []seqconstraint.Item{{0, 10, 20}, {290, 310, 40}, {340, 380, 80}},
		},
		{
			name:   "before_1",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply:  func(l *seqconstraint.IndexedLayout) { l.ApplyBefore(1, 300) },
			total:  420,
			items:  []seqconstraint.Item{{0, 10, 20}, {290, 310, 40}, {340, 380, 80}},
		},
		{
			name:   "between_2_1",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply:  func(l *seqconstraint.IndexedLayout) { l.ApplyBetween(2, 1, 300) },
			total:  390,
			items:  []seqconstraint.Item{{0, 10, 20}, {30, 50, 40}, {310, 350, 80}},
		},
		{
			name:   "between_0_2_largest",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply: func(l *seqconstraint.IndexedLayout) {
				l.ApplyBetween(0, 2, 296)
				l.ApplyBetween(2, 0, 300)
				l.ApplyBetween(0, 2, 298)
			},
			total: 350,
			items: []seqconstraint.Item{{0, 10, 20}, {30, 50, 40}, {270, 310, 80}},
		},
		{
			name:   "between_self",
			margin: 10,
			dims:   []float64{20, 40, 80},
			apply:  func(l *seqconstraint.IndexedLayout) { l.ApplyBetween(1, 1, 300) },
			total:  160,
			items:  []seqconstraint.Item{{0, 10, 20}, {30, 50, 40}, {80, 120, 80}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newLayout(tc.margin, tc.dims...)
			if tc.apply != nil {
				tc.apply(l)
			}
			c := l.Compute()
			assert.Equal(t, tc.total, c.Total)
			assert.Equal(t, tc.items, c.Items)

			for i := 1; i < len(c.Items); i++ {
				assert.LessOrEqual(t, c.Items[i-1].Center, c.Items[i].Center)
			}

			assert.Equal(t, c, l.Compute())
		})
	}
}

func TestTypedLayout(t *testing.T) {
	t.Parallel()

	l := seqconstraint.NewTyped([]string{"a", "b", "c"}, seqconstraint.Options{ItemMargin: 10})
	require.NoError(t, l.ApplyDimension("a", 20))
	require.NoError(t, l.ApplyDimension("b", 40))
	require.NoError(t, l.ApplyDimension("c", 80))
	require.NoError(t, l.ApplyBetween("c", "a", 300))

	c := l.Compute()
	assert.Equal(t, 350., c.Total)
	b, err := c.Item("b")
	require.NoError(t, err)
	assert.Equal(t, seqconstraint.Item{Start: 30, Center: 50, Dimension: 40}, b)
	cc, err := c.Item("c")
	require.NoError(t, err)
	assert.Equal(t, 310., cc.Center)

	assert.ErrorIs(t, l.ApplyDimension("x", 1), seqconstraint.ErrUnknownKey)
	assert.ErrorIs(t, l.ApplyBefore("x", 1), seqconstraint.ErrUnknownKey)
	assert.ErrorIs(t, l.ApplyBetween("a", "x", 1), seqconstraint.ErrUnknownKey)
	_, err = c.Item("x")
	assert.ErrorIs(t, err, seqconstraint.ErrUnknownKey)

	assert.Panics(t, func() {
		seqconstraint.NewTyped([]string{"a", "a"}, seqconstraint.Options{})
	})
}
