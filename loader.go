package bonddash

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Input file names expected in the data directory.
const (
	KeyRatesFile  = "keyrates.csv"
	AssetsFile    = "assets.csv"
	DurationsFile = "durations.csv"
	ConvexityFile = "convexity.csv"
)

var hundred = decimal.NewFromInt(100)

// Load reads the four market-data files from dir and returns the aligned
// bundle. Key rates are quoted in percent in the file and scaled to decimal
// yields here. Asset prices and key rates are inner-joined on date: only
// dates present in both tables survive, and a zero intersection is an
// *EmptyDatasetError.
//
// Pure read, no side effect: the resulting MarketData is immutable.
func Load(dir, currency string) (*MarketData, error) {
	kr, err := readTable(filepath.Join(dir, KeyRatesFile))
	if err != nil {
		return nil, err
	}
	prices, err := readTable(filepath.Join(dir, AssetsFile))
	if err != nil {
		return nil, err
	}
	durations, err := readVector(filepath.Join(dir, DurationsFile))
	if err != nil {
		return nil, err
	}
	convexities, err := readVector(filepath.Join(dir, ConvexityFile))
	if err != nil {
		return nil, err
	}

	kr = scalePercent(kr)

	// Inner join on the date index. The joined index drives every derived
	// series downstream.
	shared := sharedDates(prices, kr)
	if len(shared) == 0 {
		return nil, &EmptyDatasetError{Table: AssetsFile + "⋈" + KeyRatesFile}
	}
	m := &MarketData{
		keyRates:    keepDates(kr, shared),
		prices:      keepDates(prices, shared),
		assets:      prices.Columns(),
		durations:   durations,
		convexities: convexities,
		displayCur:  currency,
	}
	return m, nil
}

// readTable reads a date-indexed CSV: header "date,<col>,<col>,...", one row
// per date. Rows with any missing or unparsable cell are dropped; a file
// without a usable header is a *DataFormatError, a file with zero usable
// rows an *EmptyDatasetError.
func readTable(path string) (*Table, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &DataFormatError{File: name, Reason: err.Error()}
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, &DataFormatError{File: name, Reason: "expected a header row with a date column and at least one value column"}
	}
	header := records[0]
	if !strings.EqualFold(strings.TrimSpace(header[0]), "date") {
		return nil, &DataFormatError{File: name, Reason: fmt.Sprintf("first column is %q, expected \"date\"", header[0])}
	}

	cols := make([]string, len(header)-1)
	for i, c := range header[1:] {
		cols[i] = strings.TrimSpace(c)
	}
	t := NewTable(name, cols...)

	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			continue // short row, drop
		}
		on, err := ParseDate(rec[0])
		if err != nil {
			continue
		}
		row := make([]float64, len(cols))
		usable := true
		for i, cell := range rec[1:] {
			v, err := parseCell(cell)
			if err != nil {
				usable = false
				break
			}
			row[i] = v
		}
		if !usable {
			continue
		}
		if err := t.Append(on, row); err != nil {
			return nil, &DataFormatError{File: name, Reason: err.Error()}
		}
	}
	if t.Len() == 0 {
		return nil, &EmptyDatasetError{Table: name}
	}
	return t, nil
}

// readVector reads an asset→scalar CSV: header "asset,<name>", one row per
// asset.
func readVector(path string) (map[string]float64, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &DataFormatError{File: name, Reason: err.Error()}
	}
	if len(records) == 0 || len(records[0]) != 2 {
		return nil, &DataFormatError{File: name, Reason: "expected a header row with exactly two columns: asset,value"}
	}
	out := make(map[string]float64)
	for _, rec := range records[1:] {
		if len(rec) != 2 {
			continue
		}
		v, err := parseCell(rec[1])
		if err != nil {
			continue
		}
		out[strings.TrimSpace(rec[0])] = v
	}
	if len(out) == 0 {
		return nil, &EmptyDatasetError{Table: name}
	}
	return out, nil
}

// parseCell parses a numeric cell through decimal so that the later percent
// scaling stays exact.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), fmt.Errorf("empty cell")
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return math.NaN(), err
	}
	return d.InexactFloat64(), nil
}

// scalePercent divides every cell by 100, exactly.
func scalePercent(t *Table) *Table {
	out := NewTable(t.name, t.cols...)
	for i, on := range t.days {
		row := make([]float64, len(t.rows[i]))
		for j, v := range t.rows[i] {
			row[j] = decimal.NewFromFloat(v).Div(hundred).InexactFloat64()
		}
		out.days = append(out.days, on)
		out.rows = append(out.rows, row)
	}
	return out
}

// keepDates restricts the table to the given (sorted) dates.
func keepDates(t *Table, days []Date) *Table {
	out := NewTable(t.name, t.cols...)
	for _, on := range days {
		if row, ok := t.Get(on); ok {
			out.days = append(out.days, on)
			out.rows = append(out.rows, row)
		}
	}
	return out
}
