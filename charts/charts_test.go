package charts

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/etnz/bonddash"
)

// pngMagic is the PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testReturns(t *testing.T) *bonddash.Table {
	t.Helper()
	returns := bonddash.NewTable("assets", "BOND_A", "BOND_B")
	returns.Append(bonddash.NewDate(2025, time.June, 3), []float64{0.01, 0.002})
	returns.Append(bonddash.NewDate(2025, time.June, 4), []float64{-0.005, 0.001})
	returns.Append(bonddash.NewDate(2025, time.June, 5), []float64{0.002, -0.003})
	return returns
}

func TestAverageReturnsBar(t *testing.T) {
	s := bonddash.Aggregate(testReturns(t))
	img, err := AverageReturnsBar(s)
	if err != nil {
		t.Fatalf("AverageReturnsBar() error = %v", err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("AverageReturnsBar() did not produce a PNG")
	}
}

func TestAverageReturnsBarNoData(t *testing.T) {
	empty := bonddash.NewTable("assets", "BOND_A")
	empty.Append(bonddash.NewDate(2025, time.June, 3), []float64{math.NaN()})
	s := bonddash.Aggregate(empty)
	if _, err := AverageReturnsBar(s); err == nil {
		t.Error("AverageReturnsBar() expected an error when every mean is NaN")
	}
}

func TestCumulativeReturns(t *testing.T) {
	img, err := CumulativeReturns(testReturns(t))
	if err != nil {
		t.Fatalf("CumulativeReturns() error = %v", err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("CumulativeReturns() did not produce a PNG")
	}
}

func TestCumulativeReturnsTooShort(t *testing.T) {
	short := bonddash.NewTable("assets", "BOND_A")
	short.Append(bonddash.NewDate(2025, time.June, 3), []float64{0.01})
	if _, err := CumulativeReturns(short); err == nil {
		t.Error("CumulativeReturns() expected an error for a single row")
	}
}

func TestRiskReturnScatter(t *testing.T) {
	s := bonddash.Aggregate(testReturns(t))
	img, err := RiskReturnScatter(s)
	if err != nil {
		t.Fatalf("RiskReturnScatter() error = %v", err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Error("RiskReturnScatter() did not produce a PNG")
	}
}
