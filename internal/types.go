package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawTable is one detected table region as the PDF layer returns it.
// A nil cell marks a position covered by a merged cell.
type RawTable [][]*string

// PageRange is an inclusive, 1-indexed page interval.
type PageRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}

func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParsePageRange reads "50-54" or a single page "51".
func ParsePageRange(s string) (PageRange, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		to = from
	}
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return PageRange{}, fmt.Errorf("invalid page range %q", s)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return PageRange{}, fmt.Errorf("invalid page range %q", s)
	}
	if start < 1 || end < start {
		return PageRange{}, fmt.Errorf("invalid page range %q", s)
	}
	return PageRange{Start: start, End: end}, nil
}

// ColumnSet is a set of canonical column names.
type ColumnSet map[string]struct{}

func NewColumnSet(names ...string) ColumnSet {
	set := make(ColumnSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s ColumnSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// SubsetOf reports whether every member of s is in other.
func (s ColumnSet) SubsetOf(other ColumnSet) bool {
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

func (s ColumnSet) Intersects(other ColumnSet) bool {
	for name := range s {
		if other.Has(name) {
			return true
		}
	}
	return false
}

// ExtractionSpec names the columns to look for, where to look, and where to write.
type ExtractionSpec struct {
	Name    string     `yaml:"name"`
	Targets ColumnSet  `yaml:"-"`
	Outputs []string   `yaml:"outputs"`
	Path    string     `yaml:"path"`
	Pages   *PageRange `yaml:"page_range,omitempty"`
	Exclude ColumnSet  `yaml:"-"`
	Require ColumnSet  `yaml:"-"`
}

// Table is a header plus rectangular data rows. Column names may repeat.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) Empty() bool {
	return len(t.Columns) == 0
}

func (t Table) ColumnSet() ColumnSet {
	return NewColumnSet(t.Columns...)
}

// Index returns the position of the first column called name, or -1.
func (t Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Select builds a table from the given column positions, in that order.
func (t Table) Select(idx []int) Table {
	out := Table{Columns: make([]string, len(idx)), Rows: make([][]string, 0, len(t.Rows))}
	for i, j := range idx {
		out.Columns[i] = t.Columns[j]
	}
	for _, row := range t.Rows {
		next := make([]string, len(idx))
		for i, j := range idx {
			next[i] = row[j]
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// Reindex returns a table with exactly the given columns. Columns the table
// lacks are filled with empty strings.
func (t Table) Reindex(columns []string) Table {
	out := Table{Columns: append([]string(nil), columns...), Rows: make([][]string, 0, len(t.Rows))}
	pos := make([]int, len(columns))
	for i, c := range columns {
		pos[i] = t.Index(c)
	}
	for _, row := range t.Rows {
		next := make([]string, len(columns))
		for i, j := range pos {
			if j >= 0 {
				next[i] = row[j]
			}
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// SummaryEntry is one row count of a run.
type SummaryEntry struct {
	Key  string
	Rows int
}

// Summary keeps row counts in spec declaration order.
type Summary []SummaryEntry

func (s *Summary) Add(specName string, rows int) {
	*s = append(*s, SummaryEntry{Key: specName + "_rows", Rows: rows})
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Rows)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
