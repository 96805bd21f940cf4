package pipeline

import (
	"regtables/internal"
	"regtables/internal/catalog"
)

// MapColumns keeps the columns whose header resolves through index, renamed
// to their canonical names, in their original order. Two raw columns that
// resolve to the same name are both kept. No match yields an empty table.
func MapColumns(t internal.Table, index *catalog.Index) internal.Table {
	var keep []int
	var names []string
	for i, header := range t.Columns {
		canonical, ok := index.Lookup(header)
		if !ok {
			continue
		}
		keep = append(keep, i)
		names = append(names, canonical)
	}
	if len(keep) == 0 {
		return internal.Table{}
	}

	out := t.Select(keep)
	out.Columns = names
	return out
}
