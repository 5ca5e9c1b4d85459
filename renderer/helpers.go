// Package renderer builds the markdown views of the dashboard. It formats
// only: every figure it prints was computed by the bonddash package.
package renderer

import (
	"fmt"
	"math"

	"github.com/etnz/bonddash"
)

// missing is the display marker for a NaN cell.
const missing = "–"

// pct formats a fractional value as percent with 4 decimals, the explorer
// table format.
func pct(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return fmt.Sprintf("%.4f%%", 100*v)
}

// num formats a scalar figure (duration, convexity, loading, correlation).
func num(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return fmt.Sprintf("%.4f", v)
}

// pct2 formats a fractional value as a headline percent.
func pct2(v float64) string { return bonddash.Pct(v).String() }

// corr formats a correlation coefficient, heatmap cell style.
func corr(v float64) string {
	if math.IsNaN(v) {
		return missing
	}
	return fmt.Sprintf("%.2f", v)
}

func intString(n int) string { return fmt.Sprintf("%d", n) }
