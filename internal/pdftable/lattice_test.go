package pdftable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
)

func hline(x0, x1, y float64) graphicsstate.ExtractedLine {
	return segment(model.Point{X: x0, Y: y}, model.Point{X: x1, Y: y})
}

func vline(x, y0, y1 float64) graphicsstate.ExtractedLine {
	return segment(model.Point{X: x, Y: y0}, model.Point{X: x, Y: y1})
}

func frag(s string, x, y float64) model.TextFragment {
	return model.TextFragment{Text: s, BBox: model.BBox{X: x, Y: y, Width: float64(len(s)) * 5, Height: 10}, FontSize: 10}
}

func TestConnectedRegionsSplitsTables(t *testing.T) {
	hs := []graphicsstate.ExtractedLine{
		hline(50, 250, 700), hline(50, 250, 660),
		hline(50, 250, 400), hline(50, 250, 360),
		// a rule under a heading, crossing nothing
		hline(50, 250, 500),
	}
	vs := []graphicsstate.ExtractedLine{
		vline(50, 660, 700), vline(250, 660, 700),
		vline(50, 360, 400), vline(250, 360, 400),
	}

	regions := connectedRegions(hs, vs, 3)
	require.Len(t, regions, 2)
	for _, r := range regions {
		assert.Len(t, r.hs, 2)
		assert.Len(t, r.vs, 2)
	}
}

func TestConnectedRegionsJoinsSplitRulings(t *testing.T) {
	// Per-cell strokes: the top and bottom rulings come in two pieces.
	hs := []graphicsstate.ExtractedLine{
		hline(50, 150, 700), hline(150, 250, 700),
		hline(50, 150, 680), hline(150, 250, 680),
	}
	vs := []graphicsstate.ExtractedLine{vline(50, 680, 700), vline(250, 680, 700)}

	regions := connectedRegions(hs, vs, 3)
	require.Len(t, regions, 1)
	assert.Len(t, regions[0].hs, 4)
}

func TestRulingsFromRectangles(t *testing.T) {
	ge := graphicsstate.NewGraphicsExtractor()
	// One stroked cell, one hairline drawn as a filled rectangle and a
	// shaded background that is not a ruling.
	require.NoError(t, ge.ExtractFromBytes([]byte(
		"50 680 100 20 re S\n50 650 100 0.5 re f\n0 0 600 800 re f\n")))

	hs, vs := rulings(ge, 3)
	assert.Len(t, hs, 3)
	assert.Len(t, vs, 2)
}

func TestRuledGridSpans(t *testing.T) {
	g := &ruledGrid{
		TableGrid: &model.TableGrid{Rows: []float64{700, 680, 660}, Cols: []float64{50, 150, 250}},
		hs:        []graphicsstate.ExtractedLine{hline(50, 250, 700), hline(50, 250, 680), hline(50, 250, 660)},
		// no ruling between the columns in the header row
		vs:  []graphicsstate.ExtractedLine{vline(50, 660, 700), vline(150, 660, 680), vline(250, 660, 700)},
		tol: 3,
	}
	tbl := g.table([]model.TextFragment{
		frag("Title", 120, 686),
		frag("a", 54, 666), frag("b", 154, 666),
	})

	assert.Equal(t, 2, tbl.Rows[0][0].ColSpan)
	assert.Equal(t, "Title", tbl.Rows[0][0].Text)
	assert.True(t, tbl.HasGrid)

	raw := rawTable(tbl)
	assert.Nil(t, raw[0][1])
	assert.Equal(t, [][]string{{"Title", ""}, {"a", "b"}}, cells(raw))
}

func TestCellTextJoinsFragments(t *testing.T) {
	got := cellText([]model.TextFragment{
		frag("major", 80, 660),
		frag("Dept.", 50, 672),
		frag("of", 50, 660),
		frag("Physics", 80, 672),
	})
	assert.Equal(t, "Dept. Physics\nof major", got)

	// Jamo emitted one by one compose to a syllable.
	assert.Equal(t, "\ud559", cellText([]model.TextFragment{
		frag("\u1112", 50, 660), frag("\u1161", 50, 660), frag("\u11a8", 50, 660),
	}))
}

func TestDropEmpty(t *testing.T) {
	tbl := model.NewTable(3, 3)
	tbl.Rows[0][0].Text, tbl.Rows[0][2].Text = "Name", "Kind"
	tbl.Rows[2][0].Text, tbl.Rows[2][2].Text = "alpha", "one"

	dropEmpty(tbl)
	assert.Equal(t, [][]string{{"Name", "Kind"}, {"alpha", "one"}}, cells(rawTable(tbl)))
}

func TestToRawTablesTopFirst(t *testing.T) {
	low, high := model.NewTable(1, 1), model.NewTable(1, 1)
	low.BBox = model.BBox{X: 0, Y: 100, Width: 10, Height: 10}
	high.BBox = model.BBox{X: 0, Y: 600, Width: 10, Height: 10}
	low.Rows[0][0].Text, high.Rows[0][0].Text = "low", "high"

	got := toRawTables([]*model.Table{low, high})
	require.Len(t, got, 2)
	assert.Equal(t, "high", *got[0][0][0])
}
