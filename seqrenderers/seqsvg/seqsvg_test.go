package seqsvg_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/seqdiag/lib/color"
	"oss.terrastruct.com/seqdiag/lib/geo"
	"oss.terrastruct.com/seqdiag/lib/go2"
	"oss.terrastruct.com/seqdiag/lib/textmeasure"
	"oss.terrastruct.com/seqdiag/seqdiagram"
	"oss.terrastruct.com/seqdiag/seqgraph"
	"oss.terrastruct.com/seqdiag/seqrenderers/seqsvg"
	"oss.terrastruct.com/seqdiag/seqtarget"
)

type halfWidth struct{}

func (halfWidth) MeasureText(text string, fontSize float64) geo.Size {
	return geo.NewSize(float64(len(text))*fontSize/2, fontSize)
}

func callDiagram(t *testing.T, label string) *seqdiagram.Diagram {
	a := seqgraph.NewEntity(seqgraph.Component, "a", "A")
	b := seqgraph.NewEntity(seqgraph.Component, "b", "B")
	act, err := seqgraph.NewActivation(
		&seqgraph.SyncMessage{From: a, To: b, Text: label},
		&seqgraph.ReplyMessage{From: b, To: a, Text: "ok"},
		nil,
	)
	require.NoError(t, err)
	d := seqdiagram.New(seqgraph.NewSequence([]*seqgraph.Entity{a, b}, []*seqgraph.Activation{act}), nil)
	require.NoError(t, d.Layout(halfWidth{}))
	return d
}

func parse(t *testing.T, svg []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(svg))
	require.NoError(t, err)
	return doc
}

func texts(doc *goquery.Document) []string {
	var out []string
	doc.Find("text").Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := seqsvg.Render(callDiagram(t, "hi"), halfWidth{}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `width="264" height="320" viewBox="-100 -100 264 320"`)

	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find("rect.background").Length())
	// Two heads and one activation bar.
	assert.Equal(t, 4, doc.Find("rect").Length())
	assert.Equal(t, []string{"A", "B", "hi", "ok"}, texts(doc))

	faded, err := color.Blend(color.Black, color.White, .4)
	require.NoError(t, err)
	lifelines := doc.Find("polyline.lifeline")
	require.Equal(t, 2, lifelines.Length())
	stroke, _ := lifelines.First().Attr("stroke")
	assert.Equal(t, faded, stroke)
	points, _ := lifelines.First().Attr("points")
	assert.Equal(t, "12,40 12,120", points)

	messages := doc.Find("polyline.message")
	require.Equal(t, 2, messages.Length())
	end, _ := messages.Eq(0).Attr("marker-end")
	assert.Equal(t, "url(#lmaf)", end)
	end, _ = messages.Eq(1).Attr("marker-end")
	assert.Equal(t, "url(#lmao)", end)
	dash, ok := messages.Eq(1).Attr("stroke-dasharray")
	assert.True(t, ok)
	assert.Equal(t, "4", dash)
	_, ok = messages.Eq(0).Attr("marker-start")
	assert.False(t, ok)

	var ids []string
	doc.Find("marker").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{"lmao", "lmaf"}, ids)
}

func TestRenderColors(t *testing.T) {
	t.Parallel()

	out, err := seqsvg.Render(callDiagram(t, "hi"), halfWidth{}, &seqsvg.RenderOpts{
		Foreground: "red",
		Background: "none",
	})
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, 0, doc.Find("rect.background").Length())
	fill, _ := doc.Find("rect").First().Attr("fill")
	assert.Equal(t, "none", fill)
	fill, _ = doc.Find("text").First().Attr("fill")
	assert.Equal(t, "#ff0000", fill)
	stroke, _ := doc.Find("polyline.lifeline").First().Attr("stroke")
	assert.Equal(t, "#ff0000", stroke)
	fill, _ = doc.Find("marker#lmaf path").Attr("fill")
	assert.Equal(t, "#ff0000", fill)
}

func TestRenderPadAndScale(t *testing.T) {
	t.Parallel()

	out, err := seqsvg.Render(callDiagram(t, "hi"), halfWidth{}, &seqsvg.RenderOpts{
		Pad:   go2.Pointer(int64(0)),
		Scale: go2.Pointer(2.),
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `width="128" height="240" viewBox="0 0 64 120"`)
	assert.NotContains(t, string(out), "@font-face")

	_, err = seqsvg.Render(callDiagram(t, "hi"), halfWidth{}, &seqsvg.RenderOpts{
		Pad: go2.Pointer(int64(-1)),
	})
	assert.Error(t, err)
}

func TestRenderEscapes(t *testing.T) {
	t.Parallel()

	out, err := seqsvg.Render(callDiagram(t, "<b>&"), halfWidth{}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;b&gt;&amp;")
	assert.Contains(t, texts(parse(t, out)), "<b>&")
}

func TestRenderBundle(t *testing.T) {
	t.Parallel()

	ruler, err := textmeasure.NewRuler()
	require.NoError(t, err)

	a := seqgraph.NewEntity(seqgraph.Actor, "user", "User")
	d := seqdiagram.New(seqgraph.NewSequence([]*seqgraph.Entity{a}, nil), nil)
	require.NoError(t, d.Layout(ruler))

	out, err := seqsvg.Render(d, ruler, &seqsvg.RenderOpts{Bundle: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "@font-face")
	assert.Equal(t, []string{"User"}, texts(parse(t, out)))
	assert.Equal(t, 1, parse(t, out).Find("path").Length())
	assert.Equal(t, 0, parse(t, out).Find("defs").Length())
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	seq := seqgraph.NewSequence(nil, nil)
	_, err := seqsvg.Render(seqdiagram.New(seq, nil), halfWidth{}, nil)
	assert.ErrorIs(t, err, seqdiagram.ErrNotLaidOut)

	_, err = seqsvg.NewRenderer(halfWidth{}, &seqsvg.RenderOpts{Foreground: "nope"})
	assert.Error(t, err)
	_, err = seqsvg.NewRenderer(halfWidth{}, &seqsvg.RenderOpts{Foreground: "none"})
	assert.Error(t, err)

	r, err := seqsvg.NewRenderer(halfWidth{}, nil)
	require.NoError(t, err)
	_, err = r.Finish()
	assert.ErrorIs(t, err, seqsvg.ErrNotPrepared)

	r.Prepare(geo.NewSize(10, 10))
	out, err := r.Finish()
	require.NoError(t, err)
	assert.Contains(t, string(out), `viewBox="-100 -100 210 210"`)
	_, err = r.Finish()
	assert.ErrorIs(t, err, seqsvg.ErrNotPrepared)
}

func TestRenderBeforePrepare(t *testing.T) {
	t.Parallel()

	r, err := seqsvg.NewRenderer(halfWidth{}, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		r.RenderBox(geo.NewPoint(0, 0), geo.NewSize(10, 10), seqtarget.StrokeOptions{})
		r.RenderPolyline([]*geo.Point{geo.NewPoint(0, 0), geo.NewPoint(10, 0)}, seqtarget.NoMarker, seqtarget.ArrowFull, seqtarget.StrokeOptions{})
		r.RenderPath("M0,0 L1,1", geo.NewPoint(0, 0), seqtarget.StrokeOptions{})
		r.RenderText("early", geo.NewPoint(0, 0), 12)
	})
	_, err = r.Finish()
	assert.ErrorIs(t, err, seqsvg.ErrNotPrepared)

	// Nothing drawn before Prepare leaks into the document.
	r.Prepare(geo.NewSize(10, 10))
	out, err := r.Finish()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "early")
	assert.NotContains(t, string(out), "<marker")
}
