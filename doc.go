// Package bonddash computes interest-rate risk and performance analytics for
// a bond portfolio from four tabular market-data inputs: key rates, asset
// prices, durations and convexities.
//
// Everything is recomputed from scratch for each selection of assets and
// date range: the package holds no state beyond the immutable [MarketData]
// loaded at start, so identical inputs and filters always produce identical
// outputs.
package bonddash
