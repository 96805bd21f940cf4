package pdftable

import (
	"sort"
	"strings"

	"github.com/tsawler/tabula/model"
	"golang.org/x/text/unicode/norm"

	"regtables/internal"
)

// cellText renders the fragments of one cell as lines joined with "\n".
// Fragments whose baselines are within half a font size share a line; a
// horizontal gap wider than a fifth of the font size becomes a space.
func cellText(frags []model.TextFragment) string {
	sorted := append([]model.TextFragment(nil), frags...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BBox.Y > sorted[j].BBox.Y })

	var lines [][]model.TextFragment
	var baseline float64
	for _, f := range sorted {
		if n := len(lines); n > 0 && baseline-f.BBox.Y <= f.BBox.Height/2 {
			lines[n-1] = append(lines[n-1], f)
			continue
		}
		lines = append(lines, []model.TextFragment{f})
		baseline = f.BBox.Y
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool { return line[i].BBox.X < line[j].BBox.X })
		var b strings.Builder
		for i, f := range line {
			if i > 0 {
				prev := line[i-1]
				if f.BBox.Left()-prev.BBox.Right() > prev.BBox.Height*0.2 {
					b.WriteByte(' ')
				}
			}
			b.WriteString(f.Text)
		}
		parts = append(parts, b.String())
	}
	return normalizeText(strings.Join(parts, "\n"))
}

// normalizeText composes to NFC so Hangul jamo emitted separately come out
// as syllables.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// toRawTables orders tables top to bottom and flattens their cells. A
// position covered by another cell's row or column span becomes nil.
func toRawTables(found []*model.Table) []internal.RawTable {
	sort.SliceStable(found, func(i, j int) bool { return found[i].BBox.Top() > found[j].BBox.Top() })
	out := make([]internal.RawTable, 0, len(found))
	for _, t := range found {
		out = append(out, rawTable(t))
	}
	return out
}

func rawTable(t *model.Table) internal.RawTable {
	covered := make([][]bool, len(t.Rows))
	for i, row := range t.Rows {
		covered[i] = make([]bool, len(row))
	}

	raw := make(internal.RawTable, len(t.Rows))
	for i, row := range t.Rows {
		raw[i] = make([]*string, len(row))
		for j, c := range row {
			if covered[i][j] {
				continue
			}
			s := c.Text
			raw[i][j] = &s
			for a := i; a < i+c.RowSpan && a < len(t.Rows); a++ {
				for b := j; b < j+c.ColSpan && b < len(covered[a]); b++ {
					if a != i || b != j {
						covered[a][b] = true
					}
				}
			}
		}
	}
	return raw
}
