package bonddash

import (
	"testing"
	"time"
)

// newTestMarket builds a small three-asset, two-tenor market over four dates.
func newTestMarket(t *testing.T) *MarketData {
	t.Helper()

	prices := NewTable("assets", "BOND_A", "BOND_B", "BOND_C")
	prices.Append(NewDate(2025, time.June, 2), []float64{100, 50, 200})
	prices.Append(NewDate(2025, time.June, 3), []float64{110, 51, 198})
	prices.Append(NewDate(2025, time.June, 4), []float64{99, 52, 202})
	prices.Append(NewDate(2025, time.June, 5), []float64{101, 50, 205})

	kr := NewTable("keyrates", "2Y", "10Y")
	kr.Append(NewDate(2025, time.June, 2), []float64{0.02, 0.04})
	kr.Append(NewDate(2025, time.June, 3), []float64{0.025, 0.041})
	kr.Append(NewDate(2025, time.June, 4), []float64{0.023, 0.039})
	kr.Append(NewDate(2025, time.June, 5), []float64{0.024, 0.04})

	return &MarketData{
		keyRates: kr,
		prices:   prices,
		assets:   prices.Columns(),
		durations: map[string]float64{
			"BOND_A": 5.2, "BOND_B": 2.1, "BOND_C": 7.8,
		},
		convexities: map[string]float64{
			"BOND_A": 40.0, "BOND_B": 8.5, "BOND_C": 92.0,
		},
	}
}

// day is a shorthand for June 2025 dates used all over the tests.
func day(t *testing.T, d int) Date {
	t.Helper()
	return NewDate(2025, time.June, d)
}
