package bonddash

import (
	"testing"
	"time"
)

func TestTableAppend(t *testing.T) {
	tbl := NewTable("t", "a")
	d1, d2 := day(t, 3), day(t, 2)

	// Append two rows in reverse order and check the table stays sorted.
	if tbl.Len() != 0 {
		t.Errorf("Table.Len() = %v want 0", tbl.Len())
	}
	tbl.Append(d1, []float64{1})
	tbl.Append(d2, []float64{2})
	if tbl.Len() != 2 {
		t.Fatalf("Table.Len() = %v want 2", tbl.Len())
	}
	if tbl.days[0] != d2 || tbl.days[1] != d1 {
		t.Errorf("table dates = %v, want chronological %v, %v", tbl.days, d2, d1)
	}

	// An existing row at that date is overwritten.
	tbl.Append(d2, []float64{9})
	if tbl.Len() != 2 {
		t.Errorf("Table.Len() after overwrite = %v want 2", tbl.Len())
	}
	if row, _ := tbl.Get(d2); row[0] != 9 {
		t.Errorf("Get(d2) = %v want [9]", row)
	}

	// Row width must match the columns.
	if err := tbl.Append(day(t, 4), []float64{1, 2}); err == nil {
		t.Error("Append(wrong width) = nil error, want error")
	}
}

func TestTableSelect(t *testing.T) {
	tbl := NewTable("t", "a", "b", "c")
	tbl.Append(day(t, 2), []float64{1, 2, 3})

	// Selection keeps the source column order regardless of the asked order.
	got, err := tbl.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	want := []string{"a", "c"}
	cols := got.Columns()
	if len(cols) != 2 || cols[0] != want[0] || cols[1] != want[1] {
		t.Errorf("Select().Columns() = %v want %v", cols, want)
	}
	if row, _ := got.Get(day(t, 2)); row[0] != 1 || row[1] != 3 {
		t.Errorf("Select() row = %v want [1 3]", row)
	}

	if _, err := tbl.Select([]string{"z"}); err == nil {
		t.Error("Select(unknown) = nil error, want error")
	}
}

func TestTableClip(t *testing.T) {
	tbl := NewTable("t", "a")
	for d := 2; d <= 5; d++ {
		tbl.Append(day(t, d), []float64{float64(d)})
	}

	got := tbl.Clip(NewRange(day(t, 3), day(t, 4)))
	if got.Len() != 2 {
		t.Errorf("Clip().Len() = %d want 2", got.Len())
	}

	// A window outside the loaded bounds yields an empty table, not an error.
	empty := tbl.Clip(NewRange(NewDate(2030, time.January, 1), NewDate(2030, time.December, 31)))
	if empty.Len() != 0 {
		t.Errorf("Clip(out of bounds).Len() = %d want 0", empty.Len())
	}

	// A zero range means everything.
	all := tbl.Clip(Range{})
	if all.Len() != tbl.Len() {
		t.Errorf("Clip(zero).Len() = %d want %d", all.Len(), tbl.Len())
	}

	// An open boundary is left untouched.
	from := tbl.Clip(Range{From: day(t, 4)})
	if from.Len() != 2 {
		t.Errorf("Clip(from only).Len() = %d want 2", from.Len())
	}
	to := tbl.Clip(Range{To: day(t, 3)})
	if to.Len() != 2 {
		t.Errorf("Clip(to only).Len() = %d want 2", to.Len())
	}
}

func TestSharedDates(t *testing.T) {
	a := NewTable("a", "x")
	b := NewTable("b", "y")
	a.Append(day(t, 2), []float64{1})
	a.Append(day(t, 3), []float64{1})
	b.Append(day(t, 3), []float64{1})
	b.Append(day(t, 4), []float64{1})

	got := sharedDates(a, b)
	if len(got) != 1 || got[0] != day(t, 3) {
		t.Errorf("sharedDates() = %v want [%v]", got, day(t, 3))
	}
}
