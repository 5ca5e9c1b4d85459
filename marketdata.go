package bonddash

import "slices"

// MarketData is the immutable per-session bundle of the four inputs: key
// rates and asset prices share a common date index (inner-joined at load),
// durations and convexities are static per-asset scalars.
type MarketData struct {
	keyRates *Table
	prices   *Table

	assets      []string // price column order
	durations   map[string]float64
	convexities map[string]float64
	displayCur  string
}

// NewMarketData creates an empty market data bundle, mostly useful in tests.
func NewMarketData() *MarketData {
	return &MarketData{
		keyRates:    NewTable("keyrates"),
		prices:      NewTable("assets"),
		durations:   make(map[string]float64),
		convexities: make(map[string]float64),
	}
}

// Assets returns the asset identifiers in their price-table column order.
func (m *MarketData) Assets() []string { return slices.Clone(m.assets) }

// Tenors returns the key-rate tenor names in their source column order.
func (m *MarketData) Tenors() []string { return m.keyRates.Columns() }

// KeyRates returns the key-rate table (decimal yields, percent scaling
// already applied).
func (m *MarketData) KeyRates() *Table { return m.keyRates }

// Prices returns the asset price table.
func (m *MarketData) Prices() *Table { return m.prices }

// Duration returns the duration of an asset.
func (m *MarketData) Duration(asset string) (float64, bool) {
	v, ok := m.durations[asset]
	return v, ok
}

// Convexity returns the convexity of an asset.
func (m *MarketData) Convexity(asset string) (float64, bool) {
	v, ok := m.convexities[asset]
	return v, ok
}

// Currency returns the display currency for asset prices.
func (m *MarketData) Currency() string {
	if m.displayCur == "" {
		return "USD"
	}
	return m.displayCur
}

// Bounds returns the first and last date of the joined price index.
func (m *MarketData) Bounds() Range {
	days := m.prices.Dates()
	if len(days) == 0 {
		return Range{}
	}
	return Range{From: days[0], To: days[len(days)-1]}
}

// AssetReturns computes the fractional period-over-period changes of the
// asset prices. Recomputed fresh on every call.
func (m *MarketData) AssetReturns() (*Table, []Warning) {
	return FractionalChange(m.prices)
}

// KeyRateReturns computes the fractional period-over-period changes of the
// key rates.
func (m *MarketData) KeyRateReturns() (*Table, []Warning) {
	return FractionalChange(m.keyRates)
}

// KeyRateDiffs computes the absolute period-over-period changes of the key
// rates, the raw Δr view.
func (m *MarketData) KeyRateDiffs() *Table {
	return Diff(m.keyRates)
}
