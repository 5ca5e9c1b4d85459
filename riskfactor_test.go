package bonddash

import (
	"errors"
	"testing"
)

func TestBuildLoadings(t *testing.T) {
	md := newTestMarket(t)
	loadings, skipped := BuildLoadings(md)
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v want none", skipped)
	}

	for _, asset := range md.Assets() {
		row, err := loadings.Row(asset)
		if err != nil {
			t.Fatalf("Row(%s) error: %v", asset, err)
		}
		d, _ := md.Duration(asset)
		c, _ := md.Convexity(asset)
		if row[0] != -d {
			t.Errorf("Row(%s)[0] = %v want %v", asset, row[0], -d)
		}
		// column 2 is exactly half of the input convexity
		if row[1] != c/2 {
			t.Errorf("Row(%s)[1] = %v want %v", asset, row[1], c/2)
		}
	}
}

func TestBuildLoadingsMissingAsset(t *testing.T) {
	md := newTestMarket(t)
	delete(md.durations, "BOND_B")

	loadings, skipped := BuildLoadings(md)

	// the missing asset is reported as an alignment problem...
	err, ok := skipped["BOND_B"]
	if !ok {
		t.Fatal("BOND_B not skipped, want per-asset error")
	}
	var alignment *AlignmentError
	if !errors.As(err, &alignment) {
		t.Errorf("skipped error = %T want *AlignmentError", err)
	}

	// ...and the other assets' rows are unaffected.
	for _, asset := range []string{"BOND_A", "BOND_C"} {
		if _, err := loadings.Row(asset); err != nil {
			t.Errorf("Row(%s) error: %v, want row unaffected", asset, err)
		}
	}
	if _, err := loadings.Row("BOND_B"); err == nil {
		t.Error("Row(BOND_B) = nil error, want *AlignmentError")
	}
}

func TestBuildRiskFactors(t *testing.T) {
	md := newTestMarket(t)
	krChanges, _ := md.KeyRateReturns()
	assetReturns, _ := md.AssetReturns()

	x, err := BuildRiskFactors(krChanges, assetReturns)
	if err != nil {
		t.Fatalf("BuildRiskFactors() error: %v", err)
	}
	// output row count = |dates present in both series|
	if x.Len() != 3 {
		t.Errorf("Len() = %d want 3", x.Len())
	}

	// per tenor, the squared column is exactly the square of the delta
	for i := 0; i < x.Len(); i++ {
		for _, tenor := range x.Tenors() {
			delta, squared := x.At(i, tenor)
			if squared != delta*delta {
				t.Errorf("row %d tenor %s: squared = %v want %v", i, tenor, squared, delta*delta)
			}
		}
	}
}

func TestBuildRiskFactorsNoOverlap(t *testing.T) {
	a := NewTable("keyrates", "2Y")
	a.Append(day(t, 2), []float64{0.1})
	b := NewTable("assets", "P")
	b.Append(day(t, 9), []float64{0.1})

	_, err := BuildRiskFactors(a, b)
	var alignment *AlignmentError
	if !errors.As(err, &alignment) {
		t.Fatalf("BuildRiskFactors() error = %v want *AlignmentError", err)
	}
}
