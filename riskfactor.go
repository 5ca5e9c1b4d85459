package bonddash

import (
	"gonum.org/v1/gonum/mat"
)

// Loadings maps each asset to its first and second order rate sensitivity
// coefficients: column 0 holds −duration, column 1 half the convexity.
type Loadings struct {
	assets []string
	m      *mat.Dense
}

// BuildLoadings builds the loadings matrix for the assets of the market data,
// in price-table order. An asset missing from the duration or convexity
// table is skipped and reported with a per-asset *AlignmentError; the other
// assets' rows are unaffected.
func BuildLoadings(md *MarketData) (*Loadings, map[string]error) {
	skipped := make(map[string]error)
	var assets []string
	var data []float64
	for _, a := range md.Assets() {
		d, okD := md.Duration(a)
		c, okC := md.Convexity(a)
		if !okD {
			skipped[a] = &AlignmentError{Left: a, Right: DurationsFile}
			continue
		}
		if !okC {
			skipped[a] = &AlignmentError{Left: a, Right: ConvexityFile}
			continue
		}
		assets = append(assets, a)
		data = append(data, -d, 0.5*c)
	}
	if len(assets) == 0 {
		return &Loadings{}, skipped
	}
	return &Loadings{assets: assets, m: mat.NewDense(len(assets), 2, data)}, skipped
}

// Assets returns the covered assets in price-table order.
func (l *Loadings) Assets() []string { return l.assets }

// Row returns the [−duration, convexity/2] pair of an asset, or an
// *AlignmentError when the asset has no row.
func (l *Loadings) Row(asset string) ([2]float64, error) {
	for i, a := range l.assets {
		if a == asset {
			return [2]float64{l.m.At(i, 0), l.m.At(i, 1)}, nil
		}
	}
	return [2]float64{}, &AlignmentError{Left: asset, Right: "loadings"}
}

// Matrix exposes the underlying dense matrix, rows = assets, columns =
// {−D, ½C}.
func (l *Loadings) Matrix() mat.Matrix { return l.m }

// RiskFactors is the factor design matrix: one row per date shared between
// the key-rate changes and the asset returns, and per tenor two columns, the
// key-rate delta and its square.
type RiskFactors struct {
	tenors []string
	days   []Date
	m      *mat.Dense
}

// BuildRiskFactors inner-joins the key-rate change table with the asset
// return table on date and derives the [Δr, Δr²] columns per tenor. This is
// the authoritative alignment rule: rows without a match on both sides are
// excluded, as are key-rate rows holding a NaN delta, and an empty
// intersection is an *AlignmentError.
func BuildRiskFactors(krChanges, assetReturns *Table) (*RiskFactors, error) {
	krChanges = krChanges.dropIncomplete()
	shared := sharedDates(krChanges, assetReturns)
	if len(shared) == 0 {
		return nil, &AlignmentError{Left: krChanges.Name(), Right: assetReturns.Name()}
	}
	tenors := krChanges.Columns()
	m := mat.NewDense(len(shared), 2*len(tenors), nil)
	for i, on := range shared {
		row, _ := krChanges.Get(on)
		for j, v := range row {
			m.Set(i, j, v)
			m.Set(i, len(tenors)+j, v*v)
		}
	}
	return &RiskFactors{tenors: tenors, days: shared, m: m}, nil
}

// Tenors returns the tenor names, in key-rate table order.
func (x *RiskFactors) Tenors() []string { return x.tenors }

// Dates returns the shared date index of the factor matrix.
func (x *RiskFactors) Dates() []Date { return x.days }

// Len returns the number of factor rows, |dates present in both series|.
func (x *RiskFactors) Len() int { return len(x.days) }

// At returns the delta and squared delta of a tenor on row i.
func (x *RiskFactors) At(i int, tenor string) (delta, squared float64) {
	for j, t := range x.tenors {
		if t == tenor {
			return x.m.At(i, j), x.m.At(i, len(x.tenors)+j)
		}
	}
	return 0, 0
}

// Matrix exposes the underlying dense matrix, columns = the tenor deltas
// followed by their squares.
func (x *RiskFactors) Matrix() mat.Matrix { return x.m }
