// Package treasury converts a par-yield JSON feed document, as served by the
// fiscal-data style daily treasury endpoints, into key-rate table rows.
package treasury

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bonddash"
)

// Row is one dated observation of the par-yield curve, rates in percent as
// quoted by the feed.
type Row struct {
	Date  bonddash.Date
	Rates map[string]float64
}

// recordsPath selects the observation list in the feed document.
const recordsPath = "$.data"

// dateField is the observation date property of each record.
const dateField = "record_date"

// Decode parses a par-yield feed document. Every property of a record other
// than the date is taken as a tenor; non-numeric cells are skipped.
func Decode(r io.Reader) ([]Row, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse par-yield document: %w", err)
	}

	jval, err := jsonpath.Get(recordsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q in par-yield document: %w", recordsPath, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected %q in par-yield document: not a list but %T", recordsPath, jval)
	}

	var rows []Row
	for i, jrec := range jlist {
		rec, ok := jrec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected record %d: not an object but %T", i, jrec)
		}
		jdate, ok := rec[dateField].(string)
		if !ok {
			return nil, fmt.Errorf("record %d has no %q property", i, dateField)
		}
		on, err := bonddash.ParseDate(jdate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		row := Row{Date: on, Rates: make(map[string]float64)}
		for k, v := range rec {
			if k == dateField {
				continue
			}
			val, ok := toFloat(v)
			if !ok {
				continue
			}
			row.Rates[k] = val
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// toFloat accepts the feed's two numeric encodings, JSON numbers and quoted
// decimal strings (possibly with a comma separator).
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		x = strings.ReplaceAll(strings.TrimSpace(x), ",", ".")
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Tenors returns the union of the tenor names of the rows, sorted.
func Tenors(rows []Row) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		for k := range r.Rates {
			seen[k] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteCSV writes the rows in the key-rate input format: a date column then
// one column per tenor, rates left in percent (the loader applies the
// percent scaling). Rows missing any tenor are dropped to keep the table
// dense.
func WriteCSV(w io.Writer, rows []Row) error {
	tenors := Tenors(rows)
	if len(tenors) == 0 {
		return fmt.Errorf("no tenor found in par-yield rows")
	}
	if _, err := fmt.Fprintf(w, "date,%s\n", strings.Join(tenors, ",")); err != nil {
		return err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	for _, r := range rows {
		cells := make([]string, 0, len(tenors)+1)
		cells = append(cells, r.Date.String())
		dense := true
		for _, t := range tenors {
			v, ok := r.Rates[t]
			if !ok {
				dense = false
				break
			}
			cells = append(cells, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if !dense {
			continue
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}
