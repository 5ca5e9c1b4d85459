package bonddash

import (
	"math"
	"testing"
)

func TestAggregateCumulativeScenario(t *testing.T) {
	// Prices [100, 110, 99] → cumulative return (1.10)(0.90)−1 = −1%.
	prices := NewTable("assets", "P")
	prices.Append(day(t, 2), []float64{100})
	prices.Append(day(t, 3), []float64{110})
	prices.Append(day(t, 4), []float64{99})

	returns, _ := FractionalChange(prices)
	s := Aggregate(returns)

	if got := s.Stats[0].Cumulative; math.Abs(got-(-0.01)) > 1e-12 {
		t.Errorf("Cumulative = %v want -0.01", got)
	}
}

func TestAggregateDeterminism(t *testing.T) {
	md := newTestMarket(t)
	returns, _ := md.AssetReturns()

	a := Aggregate(returns)
	b := Aggregate(returns)

	for i := range a.Stats {
		if a.Stats[i] != b.Stats[i] {
			t.Errorf("Stats[%d] differ between identical runs: %+v vs %+v", i, a.Stats[i], b.Stats[i])
		}
	}
	for i := range a.Correlation.Assets {
		for j := range a.Correlation.Assets {
			x, y := a.Correlation.At(i, j), b.Correlation.At(i, j)
			if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
				t.Errorf("Correlation(%d,%d) differ: %v vs %v", i, j, x, y)
			}
		}
	}
}

func TestAggregateMeanAndVolatility(t *testing.T) {
	returns := NewTable("assets", "P")
	returns.Append(day(t, 3), []float64{0.01})
	returns.Append(day(t, 4), []float64{0.03})

	s := Aggregate(returns)
	st := s.Stats[0]
	if math.Abs(st.Mean-0.02) > 1e-12 {
		t.Errorf("Mean = %v want 0.02", st.Mean)
	}
	// sample standard deviation uses the N−1 denominator
	want := math.Sqrt((0.0001 + 0.0001) / 1)
	if math.Abs(st.Volatility-want) > 1e-12 {
		t.Errorf("Volatility = %v want %v", st.Volatility, want)
	}
	if st.Observations != 2 {
		t.Errorf("Observations = %d want 2", st.Observations)
	}
}

func TestCorrelateSymmetricUnitDiagonal(t *testing.T) {
	md := newTestMarket(t)
	returns, _ := md.AssetReturns()

	c := Correlate(returns)
	n := len(c.Assets)
	for i := 0; i < n; i++ {
		if c.At(i, i) != 1 {
			t.Errorf("Correlation(%d,%d) = %v want 1", i, i, c.At(i, i))
		}
		for j := 0; j < n; j++ {
			if c.At(i, j) != c.At(j, i) {
				t.Errorf("matrix not symmetric at (%d,%d): %v vs %v", i, j, c.At(i, j), c.At(j, i))
			}
			if v := c.At(i, j); v < -1-1e-12 || v > 1+1e-12 {
				t.Errorf("Correlation(%d,%d) = %v outside [-1,1]", i, j, v)
			}
		}
	}
}

func TestCorrelateTooFewObservations(t *testing.T) {
	// Pairs with fewer than 2 overlapping observations are undefined, not zero.
	returns := NewTable("assets", "P", "Q")
	returns.Append(day(t, 3), []float64{0.01, math.NaN()})
	returns.Append(day(t, 4), []float64{0.02, 0.01})

	c := Correlate(returns)
	if got := c.At(0, 1); !math.IsNaN(got) {
		t.Errorf("Correlation(P,Q) = %v want NaN", got)
	}
	// P still correlates perfectly with itself
	if got := c.At(0, 0); got != 1 {
		t.Errorf("Correlation(P,P) = %v want 1", got)
	}
}

func TestAggregateSkipsMissingCells(t *testing.T) {
	returns := NewTable("assets", "P")
	returns.Append(day(t, 3), []float64{0.01})
	returns.Append(day(t, 4), []float64{math.NaN()})
	returns.Append(day(t, 5), []float64{0.03})

	s := Aggregate(returns)
	if s.Stats[0].Observations != 2 {
		t.Errorf("Observations = %d want 2", s.Stats[0].Observations)
	}
	if math.IsNaN(s.Stats[0].Mean) {
		t.Error("Mean = NaN, want computed over the non-missing cells")
	}
}

func TestCumulativePath(t *testing.T) {
	returns := NewTable("assets", "P")
	returns.Append(day(t, 3), []float64{0.1})
	returns.Append(day(t, 4), []float64{math.NaN()})
	returns.Append(day(t, 5), []float64{-0.1})

	got := CumulativePath(returns, "P")
	if len(got) != 3 {
		t.Fatalf("len = %d want 3", len(got))
	}
	if math.Abs(got[0]-1.1) > 1e-12 {
		t.Errorf("path[0] = %v want 1.1", got[0])
	}
	// a missing period leaves the index flat
	if got[1] != got[0] {
		t.Errorf("path[1] = %v want %v (flat)", got[1], got[0])
	}
	if math.Abs(got[2]-0.99) > 1e-12 {
		t.Errorf("path[2] = %v want 0.99", got[2])
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		vol  float64
		want string
	}{
		{0.01, "low"},
		{0.03, "medium"},
		{0.08, "high"},
		{math.NaN(), "unknown"},
	}
	for _, tc := range tests {
		if got := riskLevel(tc.vol); got != tc.want {
			t.Errorf("riskLevel(%v) = %q want %q", tc.vol, got, tc.want)
		}
	}
}
