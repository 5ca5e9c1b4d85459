package bonddash

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Review is the presentation adapter: one filter selection (assets + date
// window) over the loaded market data. It only filters and formats, it never
// transforms values. A Review is cheap, it is rebuilt on every interaction.
type Review struct {
	md     *MarketData
	assets []string // in price-table order
	window Range
}

// NewReview creates a review for the selected assets (empty means all) and
// date window (zero means the full loaded range). Unknown asset identifiers
// are an error.
func NewReview(md *MarketData, assets []string, window Range) (*Review, error) {
	if len(assets) == 0 {
		assets = md.Assets()
	} else {
		for _, sel := range assets {
			if md.prices.Column(sel) < 0 {
				return nil, fmt.Errorf("unknown asset %q", sel)
			}
		}
		// reorder the selection to the source column order
		var ordered []string
		for _, a := range md.Assets() {
			for _, sel := range assets {
				if sel == a {
					ordered = append(ordered, a)
					break
				}
			}
		}
		assets = ordered
	}
	return &Review{md: md, assets: assets, window: window}, nil
}

// Assets returns the selected asset identifiers, in source column order.
func (r *Review) Assets() []string { return r.assets }

// Window returns the selected date window.
func (r *Review) Window() Range { return r.window }

// Market returns the underlying market data.
func (r *Review) Market() *MarketData { return r.md }

// Returns computes the filtered asset return table: fractional changes of
// the selected assets, clipped to the window. A window outside the loaded
// bounds yields an empty table, not an error.
func (r *Review) Returns() (*Table, []Warning) {
	full, warnings := r.md.AssetReturns()
	selected, err := full.Select(r.assets)
	if err != nil {
		// assets were validated in NewReview
		panic(err)
	}
	return selected.Clip(r.window), warnings
}

// KeyRateChanges computes the key-rate change table clipped to the window,
// fractional by default, absolute when abs is true.
func (r *Review) KeyRateChanges(abs bool) (*Table, []Warning) {
	if abs {
		return r.md.KeyRateDiffs().Clip(r.window), nil
	}
	t, warnings := r.md.KeyRateReturns()
	return t.Clip(r.window), warnings
}

// Summary aggregates the statistics of the filtered return table.
func (r *Review) Summary() *Summary {
	returns, _ := r.Returns()
	return Aggregate(returns)
}

// Overview is the headline view of one selection.
type Overview struct {
	TotalAssets    int
	SelectedAssets int
	Points         int
	Bounds         Range
	Window         Range
	AvgReturn      float64
	AvgVolatility  float64
	RiskLevel      string
}

// Overview computes the headline metrics of the selection.
func (r *Review) Overview() *Overview {
	s := r.Summary()
	return &Overview{
		TotalAssets:    len(r.md.Assets()),
		SelectedAssets: len(r.assets),
		Points:         s.Points,
		Bounds:         r.md.Bounds(),
		Window:         r.window,
		AvgReturn:      s.AvgReturn,
		AvgVolatility:  s.AvgVolatility,
		RiskLevel:      s.RiskLevel,
	}
}

// WriteCSV serializes the filtered return table: a date column first, then
// the selected asset columns in their source order. NaN cells are written
// empty. This is the download format of the dashboard.
func (r *Review) WriteCSV(w io.Writer) error {
	returns, _ := r.Returns()
	return WriteTableCSV(w, returns)
}

// WriteTableCSV serializes any table in the export format.
func WriteTableCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"date"}, t.Columns()...)); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for on, row := range t.Rows() {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, on.String())
		for _, v := range row {
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write export row on %s: %w", on, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
