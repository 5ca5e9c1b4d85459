package bonddash

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// AssetStats holds the aggregate figures of one asset over the selected
// range.
type AssetStats struct {
	Asset        string
	Mean         float64 // arithmetic mean of the period returns
	Volatility   float64 // sample standard deviation (N−1)
	Cumulative   float64 // Π(1+r)−1 over the range
	Observations int     // non-missing periods
}

// CorrelationMatrix is the pairwise Pearson correlation across the selected
// assets' return series, row-aligned by date. Pairs with fewer than two
// overlapping observations hold NaN, never zero.
type CorrelationMatrix struct {
	Assets []string
	m      [][]float64
}

// At returns the correlation between assets i and j.
func (c *CorrelationMatrix) At(i, j int) float64 { return c.m[i][j] }

// Summary aggregates the per-asset statistics and the portfolio-level risk
// figures of one filter selection.
type Summary struct {
	Assets      []string
	Stats       []AssetStats
	Correlation *CorrelationMatrix
	Points      int // rows of the filtered return table

	// Portfolio-level figures, averaged across the selected assets.
	AvgReturn     float64
	AvgVolatility float64
	Sharpe        float64 // AvgReturn / AvgVolatility
	WorstPeriod   float64 // lowest single-period return observed
	RiskLevel     string  // low / medium / high bucket on AvgVolatility
}

// Aggregate computes the summary over a (filtered) return table. Assets with
// no usable observation still get a row, with NaN figures. Deterministic:
// identical tables always yield identical summaries.
func Aggregate(returns *Table) *Summary {
	s := &Summary{Assets: returns.Columns(), Points: returns.Len()}

	worst := math.NaN()
	var meanSum, volSum float64
	var meanN, volN int
	for _, asset := range s.Assets {
		obs := compact(returns.Series(asset))
		st := AssetStats{Asset: asset, Observations: len(obs)}
		if len(obs) == 0 {
			st.Mean, st.Volatility, st.Cumulative = math.NaN(), math.NaN(), math.NaN()
		} else {
			st.Mean = stat.Mean(obs, nil)
			st.Volatility = stat.StdDev(obs, nil) // sample (N−1) by definition
			st.Cumulative = compound(obs)
			meanSum += st.Mean
			meanN++
			// a single observation has no sample deviation, skip it from the
			// portfolio average
			if !math.IsNaN(st.Volatility) {
				volSum += st.Volatility
				volN++
			}
			for _, r := range obs {
				if math.IsNaN(worst) || r < worst {
					worst = r
				}
			}
		}
		s.Stats = append(s.Stats, st)
	}
	s.AvgReturn, s.AvgVolatility, s.Sharpe = math.NaN(), math.NaN(), math.NaN()
	if meanN > 0 {
		s.AvgReturn = meanSum / float64(meanN)
	}
	if volN > 0 {
		s.AvgVolatility = volSum / float64(volN)
		s.Sharpe = s.AvgReturn / s.AvgVolatility
	}
	s.WorstPeriod = worst
	s.RiskLevel = riskLevel(s.AvgVolatility)
	s.Correlation = Correlate(returns)
	return s
}

// Correlate computes the pairwise Pearson correlation matrix of the table
// columns. Each pair uses only the dates where both columns hold a value;
// fewer than two such dates yield NaN. The matrix is symmetric with a unit
// diagonal for every column holding at least two observations.
func Correlate(returns *Table) *CorrelationMatrix {
	assets := returns.Columns()
	n := len(assets)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	series := make([][]float64, n)
	for i, a := range assets {
		series[i] = returns.Series(a)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			xs, ys := overlap(series[i], series[j])
			var c float64
			switch {
			case len(xs) < 2:
				c = math.NaN()
			case i == j:
				c = 1
			default:
				c = stat.Correlation(xs, ys, nil)
			}
			m[i][j], m[j][i] = c, c
		}
	}
	return &CorrelationMatrix{Assets: assets, m: m}
}

// compact drops the NaN cells of a series.
func compact(xs []float64) []float64 {
	var out []float64
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// overlap keeps the positions where both series hold a value.
func overlap(xs, ys []float64) (ox, oy []float64) {
	for i := range xs {
		if !math.IsNaN(xs[i]) && !math.IsNaN(ys[i]) {
			ox = append(ox, xs[i])
			oy = append(oy, ys[i])
		}
	}
	return ox, oy
}

// compound chains the period returns: Π(1+r)−1, starting at 1.0. Restartable
// per filter change, no state carried.
func compound(obs []float64) float64 {
	acc := 1.0
	for _, r := range obs {
		acc *= 1 + r
	}
	return acc - 1
}

// CumulativePath returns the running compounded index (starting at 1.0) of a
// column, one point per date of the table. NaN cells leave the index flat for
// that period.
func CumulativePath(returns *Table, asset string) []float64 {
	xs := returns.Series(asset)
	out := make([]float64, len(xs))
	acc := 1.0
	for i, r := range xs {
		if !math.IsNaN(r) {
			acc *= 1 + r
		}
		out[i] = acc
	}
	return out
}

func riskLevel(avgVol float64) string {
	switch {
	case math.IsNaN(avgVol):
		return "unknown"
	case avgVol < 0.02:
		return "low"
	case avgVol > 0.05:
		return "high"
	default:
		return "medium"
	}
}
