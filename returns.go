package bonddash

import "math"

// FractionalChange computes the period-over-period fractional change of every
// column: delta[t] = (v[t]-v[t-1])/v[t-1]. The result has one row less than
// the source; a source of length ≤ 1 yields an empty table, not an error.
//
// A zero denominator does not abort the computation: the cell is NaN and a
// [Warning] records the date and column.
func FractionalChange(t *Table) (*Table, []Warning) {
	out := NewTable(t.name, t.cols...)
	var warnings []Warning
	for i := 1; i < t.Len(); i++ {
		prev, cur := t.rows[i-1], t.rows[i]
		row := make([]float64, len(t.cols))
		for j := range t.cols {
			if prev[j] == 0 {
				row[j] = math.NaN()
				warnings = append(warnings, Warning{Column: t.cols[j], Date: t.days[i]})
				continue
			}
			row[j] = (cur[j] - prev[j]) / prev[j]
		}
		out.days = append(out.days, t.days[i])
		out.rows = append(out.rows, row)
	}
	return out, warnings
}

// Diff computes the absolute period-over-period change of every column:
// delta[t] = v[t]-v[t-1]. Same shape rules as [FractionalChange].
func Diff(t *Table) *Table {
	out := NewTable(t.name, t.cols...)
	for i := 1; i < t.Len(); i++ {
		prev, cur := t.rows[i-1], t.rows[i]
		row := make([]float64, len(t.cols))
		for j := range t.cols {
			row[j] = cur[j] - prev[j]
		}
		out.days = append(out.days, t.days[i])
		out.rows = append(out.rows, row)
	}
	return out
}
