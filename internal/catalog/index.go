package catalog

import (
	"regtables/internal/util"
)

// Index resolves normalized header text to a canonical column name.
type Index struct {
	ByHeader map[string]string
}

func BuildIndex(aliases []ColumnAlias) *Index {
	idx := &Index{ByHeader: map[string]string{}}
	for _, alias := range aliases {
		for _, variant := range alias.Variants {
			key := util.NormalizeHeader(variant)
			if key == "" {
				continue
			}
			idx.ByHeader[key] = alias.Canonical
		}
	}
	return idx
}

// Lookup normalizes header and returns its canonical column, if any.
func (idx *Index) Lookup(header string) (string, bool) {
	canonical, ok := idx.ByHeader[util.NormalizeHeader(header)]
	return canonical, ok
}

var defaultIndex = BuildIndex(ColumnAliases)

// DefaultIndex is the index over ColumnAliases.
func DefaultIndex() *Index {
	return defaultIndex
}
