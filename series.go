package bonddash

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// Table stores a chronological series of rows, one value per named column,
// each row associated with a unique date. It ensures that dates are unique
// and the rows are always sorted.
type Table struct {
	name string
	cols []string
	days []Date
	rows [][]float64
}

// NewTable creates an empty table with the given column names, in display
// order.
func NewTable(name string, cols ...string) *Table {
	return &Table{name: name, cols: slices.Clone(cols)}
}

// Name returns the table name, usually the source file it was read from.
func (t *Table) Name() string { return t.name }

// Columns returns the column names in their source order.
func (t *Table) Columns() []string { return slices.Clone(t.cols) }

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.days) }

// Dates returns the row dates in chronological order.
func (t *Table) Dates() []Date { return slices.Clone(t.days) }

// chronological is a private implementation to make this table chronologically sorted.
type chronological struct{ *Table }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
}

func (t *Table) sort() { sort.Sort(chronological{t}) }

// Append adds a row to the table. An existing row at that date is overwritten,
// giving higher priority to the last data.
func (t *Table) Append(on Date, row []float64) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("row on %s has %d values, table %q has %d columns", on, len(row), t.name, len(t.cols))
	}
	if i := slices.Index(t.days, on); i >= 0 {
		t.rows[i] = slices.Clone(row)
		return nil
	}
	t.days = append(t.days, on)
	t.rows = append(t.rows, slices.Clone(row))
	t.sort()
	return nil
}

// Rows returns an iterator over all date/row pairs in chronological order.
func (t *Table) Rows() iter.Seq2[Date, []float64] {
	return func(yield func(Date, []float64) bool) {
		for i, on := range t.days {
			if !yield(on, t.rows[i]) {
				return
			}
		}
	}
}

// Get returns the row at 'day' and true, or nil and false.
func (t *Table) Get(day Date) ([]float64, bool) {
	i, found := slices.BinarySearchFunc(t.days, day, Date.Compare)
	if !found {
		return nil, false
	}
	return t.rows[i], true
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int { return slices.Index(t.cols, name) }

// Select returns a new table restricted to the named columns, keeping the
// source column order regardless of the order of 'names'. Unknown names are
// reported as an error.
func (t *Table) Select(names []string) (*Table, error) {
	for _, n := range names {
		if t.Column(n) < 0 {
			return nil, fmt.Errorf("table %q has no column %q", t.name, n)
		}
	}
	var keep []int
	var cols []string
	for i, c := range t.cols {
		if slices.Contains(names, c) {
			keep = append(keep, i)
			cols = append(cols, c)
		}
	}
	out := NewTable(t.name, cols...)
	for i, on := range t.days {
		row := make([]float64, len(keep))
		for j, k := range keep {
			row[j] = t.rows[i][k]
		}
		out.days = append(out.days, on)
		out.rows = append(out.rows, row)
	}
	return out, nil
}

// Clip returns a new table restricted to the rows whose date falls within the
// range. An out-of-bounds range yields an empty table.
func (t *Table) Clip(r Range) *Table {
	out := NewTable(t.name, t.cols...)
	for _, on := range r.clip(t.days) {
		row, _ := t.Get(on)
		out.days = append(out.days, on)
		out.rows = append(out.rows, slices.Clone(row))
	}
	return out
}

// Head returns a new table keeping at most the first n rows.
func (t *Table) Head(n int) *Table {
	out := NewTable(t.name, t.cols...)
	for i := 0; i < len(t.days) && i < n; i++ {
		out.days = append(out.days, t.days[i])
		out.rows = append(out.rows, slices.Clone(t.rows[i]))
	}
	return out
}

// Series returns the named column as a dense slice aligned with Dates.
// Missing column yields nil.
func (t *Table) Series(name string) []float64 {
	j := t.Column(name)
	if j < 0 {
		return nil
	}
	out := make([]float64, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i][j]
	}
	return out
}

// sharedDates returns the dates present in both tables, in chronological
// order.
func sharedDates(a, b *Table) []Date {
	var out []Date
	for _, on := range a.days {
		if _, ok := b.Get(on); ok {
			out = append(out, on)
		}
	}
	return out
}

// dropIncomplete returns a copy of the table without the rows holding at
// least one NaN cell.
func (t *Table) dropIncomplete() *Table {
	out := NewTable(t.name, t.cols...)
	for i, on := range t.days {
		complete := true
		for _, v := range t.rows[i] {
			if math.IsNaN(v) {
				complete = false
				break
			}
		}
		if complete {
			out.days = append(out.days, on)
			out.rows = append(out.rows, slices.Clone(t.rows[i]))
		}
	}
	return out
}
