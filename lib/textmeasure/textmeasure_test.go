package textmeasure_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/seqdiag/lib/textmeasure"
)

var txts = []string{
	"Jesus is my POSTMASTER GENERAL ...",
	"Don't let go of what you've got hold of, until you have hold of something else.",
	"To get something clean, one has to get something dirty.",
	"The notes blatted skyward as they rose over the Canada geese, feathered",
	"Baseball is a skilled game.  It's America's game - it, and high taxes.",
	"The computing field is always in need of new cliches.",
}

func TestTextMeasure(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	for _, txt := range txts {
		txt = strings.ReplaceAll(txt, " ", "")
		for i := 1; i < len(txt)-1; i++ {
			w1, h1 := ruler.MeasurePrecise(16, txt[:i])
			w2, h2 := ruler.MeasurePrecise(16, txt[:i+1])
			assert.Equal(t, h1, h2)
			assert.Less(t, w1, w2, fmt.Sprintf(`"%s" vs "%s"`, txt[:i], txt[:i+1]))
		}
	}

	for _, txt := range txts {
		whitespaces := strings.Count(txt, " ")
		for i := 0; i < whitespaces-1; i++ {
			txt1 := strings.Replace(txt, " ", "\n", i)
			txt2 := strings.Replace(txt, " ", "\n", i+1)

			w1, h1 := ruler.MeasurePrecise(16, txt1)
			w2, h2 := ruler.MeasurePrecise(16, txt2)
			assert.Less(t, h1, h2)
			assert.LessOrEqual(t, w2, w1)
		}
	}
}

func TestFontSizes(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	sizes := []float64{8, 12, 16, 20, 24, 32}
	for _, txt := range txts {
		for i := 0; i < len(sizes)-1; i++ {
			s1 := ruler.MeasureText(txt, sizes[i])
			s2 := ruler.MeasureText(txt, sizes[i+1])
			assert.Less(t, s1.Height, s2.Height)
			assert.Less(t, s1.Width, s2.Width)
		}
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	for _, s := range []string{"", " ", "\n", "\t"} {
		w, h := ruler.MeasurePrecise(16, s)
		assert.Equal(t, 0., w, "%q", s)
		assert.Equal(t, 0., h, "%q", s)
	}
	w, h := ruler.MeasurePrecise(0, "abc")
	assert.Equal(t, 0., w)
	assert.Equal(t, 0., h)
}

func TestWideGraphemes(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	narrow := ruler.MeasureText("ab", 16)
	wide := ruler.MeasureText("a字字b", 16)
	assert.Greater(t, wide.Width, narrow.Width)
	assert.Equal(t, narrow.Height, wide.Height)
}

func TestTabs(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	w1, _ := ruler.MeasurePrecise(16, "a b")
	w2, _ := ruler.MeasurePrecise(16, "a\tb")
	assert.Greater(t, w2, w1)
}
