package pdftable

import (
	"math"
	"sort"

	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"

	"regtables/internal"
)

// ruledTables finds the ruled tables of a page. Rulings that touch each
// other form one region, and tabula's grid detector turns every region into
// a cell grid. Inner rulings missing from the drawing merge neighbouring
// cells.
func ruledTables(c *pageContent, tol float64) []internal.RawTable {
	hs, vs := rulings(c.graphics, tol)

	gd := tables.NewGridDetector()
	gd.AlignmentTolerance = tol

	var found []*model.Table
	for _, r := range connectedRegions(hs, vs, tol) {
		for _, hyp := range gd.DetectFromLines(r.hs, r.vs) {
			g := &ruledGrid{TableGrid: hyp.ToTableGrid(), hs: r.hs, vs: r.vs, tol: tol}
			t := g.table(c.page.RawText)
			t.Confidence = hyp.Confidence
			found = append(found, t)
		}
	}
	return toRawTables(found)
}

// rulings collects the horizontal and vertical strokes of a page. Stroked
// rectangles contribute their four sides and hairline rectangles, stroked
// or filled, count as a single ruling. Larger filled rectangles are cell
// shading and are ignored.
func rulings(ge *graphicsstate.GraphicsExtractor, tol float64) (hs, vs []graphicsstate.ExtractedLine) {
	grid := ge.GetGridLines()
	hs = append(hs, grid.Horizontals...)
	vs = append(vs, grid.Verticals...)

	for _, r := range ge.GetRectangles() {
		b := r.BBox
		x0, y0, x1, y1 := b.Left(), b.Bottom(), b.Right(), b.Top()
		switch {
		case b.Width <= tol && b.Height <= tol:
		case b.Height <= tol:
			y := (y0 + y1) / 2
			hs = append(hs, segment(model.Point{X: x0, Y: y}, model.Point{X: x1, Y: y}))
		case b.Width <= tol:
			x := (x0 + x1) / 2
			vs = append(vs, segment(model.Point{X: x, Y: y0}, model.Point{X: x, Y: y1}))
		case r.IsStroked:
			hs = append(hs,
				segment(model.Point{X: x0, Y: y0}, model.Point{X: x1, Y: y0}),
				segment(model.Point{X: x0, Y: y1}, model.Point{X: x1, Y: y1}))
			vs = append(vs,
				segment(model.Point{X: x0, Y: y0}, model.Point{X: x0, Y: y1}),
				segment(model.Point{X: x1, Y: y0}, model.Point{X: x1, Y: y1}))
		}
	}
	return hs, vs
}

func segment(start, end model.Point) graphicsstate.ExtractedLine {
	return graphicsstate.ExtractedLine{
		Start:        start,
		End:          end,
		IsHorizontal: start.Y == end.Y,
		IsVertical:   start.X == end.X,
		BBox:         model.NewBBoxFromPoints(start, end),
	}
}

// span returns the position of a ruling across its direction and the
// interval it covers along it.
func span(l graphicsstate.ExtractedLine, horizontal bool) (pos, lo, hi float64) {
	if horizontal {
		return (l.Start.Y + l.End.Y) / 2, math.Min(l.Start.X, l.End.X), math.Max(l.Start.X, l.End.X)
	}
	return (l.Start.X + l.End.X) / 2, math.Min(l.Start.Y, l.End.Y), math.Max(l.Start.Y, l.End.Y)
}

func crosses(h, v graphicsstate.ExtractedLine, tol float64) bool {
	y, x0, x1 := span(h, true)
	x, y0, y1 := span(v, false)
	return x >= x0-tol && x <= x1+tol && y >= y0-tol && y <= y1+tol
}

// collinear reports rulings of one direction that continue each other.
func collinear(a, b graphicsstate.ExtractedLine, horizontal bool, tol float64) bool {
	pa, la, ha := span(a, horizontal)
	pb, lb, hb := span(b, horizontal)
	return math.Abs(pa-pb) <= tol && la <= hb+tol && lb <= ha+tol
}

type region struct {
	hs, vs []graphicsstate.ExtractedLine
}

// connectedRegions partitions rulings into groups joined by crossings. The
// grid detector spans everything it is given, so separate tables on one
// page must be split apart first.
func connectedRegions(hs, vs []graphicsstate.ExtractedLine, tol float64) []region {
	parent := make([]int, len(hs)+len(vs))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	for i, h := range hs {
		for j, v := range vs {
			if crosses(h, v, tol) {
				union(i, len(hs)+j)
			}
		}
		for j := i + 1; j < len(hs); j++ {
			if collinear(h, hs[j], true, tol) {
				union(i, j)
			}
		}
	}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if collinear(vs[i], vs[j], false, tol) {
				union(len(hs)+i, len(hs)+j)
			}
		}
	}

	byRoot := map[int]*region{}
	var out []*region
	get := func(i int) *region {
		root := find(i)
		r, ok := byRoot[root]
		if !ok {
			r = &region{}
			byRoot[root] = r
			out = append(out, r)
		}
		return r
	}
	for i, h := range hs {
		r := get(i)
		r.hs = append(r.hs, h)
	}
	for i, v := range vs {
		r := get(len(hs) + i)
		r.vs = append(r.vs, v)
	}

	regions := make([]region, 0, len(out))
	for _, r := range out {
		if len(r.hs) >= 2 && len(r.vs) >= 2 {
			regions = append(regions, *r)
		}
	}
	return regions
}

// ruledGrid is a detected grid together with the rulings it was built from.
// Rows run top-down, Cols left to right.
type ruledGrid struct {
	*model.TableGrid
	hs, vs []graphicsstate.ExtractedLine
	tol    float64
}

// drawn reports a ruling at pos covering the midpoint of lo..hi.
func (g *ruledGrid) drawn(lines []graphicsstate.ExtractedLine, horizontal bool, pos, lo, hi float64) bool {
	mid := (lo + hi) / 2
	for _, l := range lines {
		p, from, to := span(l, horizontal)
		if math.Abs(p-pos) <= g.tol && mid >= from-g.tol && mid <= to+g.tol {
			return true
		}
	}
	return false
}

// boundaryRight reports the ruling between columns j and j+1 within row i.
func (g *ruledGrid) boundaryRight(i, j int) bool {
	return g.drawn(g.vs, false, g.Cols[j+1], g.Rows[i+1], g.Rows[i])
}

// boundaryBelow reports the ruling between rows i and i+1 within column j.
func (g *ruledGrid) boundaryBelow(i, j int) bool {
	return g.drawn(g.hs, true, g.Rows[i+1], g.Cols[j], g.Cols[j+1])
}

// table builds the model table: spans from missing rulings, then text by
// fragment centre.
func (g *ruledGrid) table(frags []model.TextFragment) *model.Table {
	rows, cols := g.RowCount(), g.ColCount()
	t := model.NewTable(rows, cols)
	t.HasGrid = true
	t.BBox = model.BBox{
		X:      g.Cols[0],
		Y:      g.Rows[rows],
		Width:  g.Cols[cols] - g.Cols[0],
		Height: g.Rows[0] - g.Rows[rows],
	}

	owner := make([][]*model.Cell, rows)
	for i := range owner {
		owner[i] = make([]*model.Cell, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if owner[i][j] != nil {
				continue
			}
			cs := 1
			for j+cs < cols && owner[i][j+cs] == nil && !g.boundaryRight(i, j+cs-1) {
				cs++
			}
			rs := 1
			for i+rs < rows && g.openBelow(i+rs-1, j, cs) {
				rs++
			}

			cell := &t.Rows[i][j]
			cell.RowSpan, cell.ColSpan = rs, cs
			cell.IsHeader = i == 0
			cell.BBox = model.BBox{
				X:      g.Cols[j],
				Y:      g.Rows[i+rs],
				Width:  g.Cols[j+cs] - g.Cols[j],
				Height: g.Rows[i] - g.Rows[i+rs],
			}
			for a := i; a < i+rs; a++ {
				for b := j; b < j+cs; b++ {
					owner[a][b] = cell
				}
			}
		}
	}

	inCell := map[*model.Cell][]model.TextFragment{}
	for _, f := range frags {
		if i, j, ok := g.locate(f.BBox.Center()); ok {
			inCell[owner[i][j]] = append(inCell[owner[i][j]], f)
		}
	}
	for cell, fs := range inCell {
		cell.Text = cellText(fs)
	}
	return t
}

// openBelow reports that no ruling closes row i across columns j..j+cs-1.
func (g *ruledGrid) openBelow(i, j, cs int) bool {
	for b := j; b < j+cs; b++ {
		if g.boundaryBelow(i, b) {
			return false
		}
	}
	return true
}

func (g *ruledGrid) locate(p model.Point) (row, col int, ok bool) {
	row = sort.Search(g.RowCount(), func(i int) bool { return p.Y >= g.Rows[i+1] })
	col = sort.Search(g.ColCount(), func(j int) bool { return p.X <= g.Cols[j+1] })
	if row == g.RowCount() || col == g.ColCount() || p.Y > g.Rows[0] || p.X < g.Cols[0] {
		return 0, 0, false
	}
	return row, col, true
}
