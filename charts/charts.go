// Package charts renders the dashboard views as PNG images.
package charts

import (
	"bytes"
	"errors"
	"math"

	"github.com/etnz/bonddash"
	charts "github.com/vicanso/go-charts/v2"
	chart "github.com/wcharczuk/go-chart/v2"
)

// AverageReturnsBar renders the average period return per asset as a bar
// chart. Assets without a usable observation are skipped.
func AverageReturnsBar(s *bonddash.Summary) ([]byte, error) {
	var labels []string
	var means []float64
	for _, st := range s.Stats {
		if math.IsNaN(st.Mean) {
			continue
		}
		labels = append(labels, st.Asset)
		means = append(means, 100*st.Mean)
	}
	if len(means) == 0 {
		return nil, errors.New("no data")
	}

	painter, err := charts.BarRender([][]float64{means},
		charts.TitleTextOptionFunc("Average Returns by Asset (%)"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// CumulativeReturns renders the running compounded index of every selected
// asset as one line chart, legend per asset.
func CumulativeReturns(returns *bonddash.Table) ([]byte, error) {
	names := returns.Columns()
	if returns.Len() < 2 || len(names) == 0 {
		return nil, errors.New("not enough data points")
	}

	values := make([][]float64, 0, len(names))
	for _, name := range names {
		values = append(values, bonddash.CumulativePath(returns, name))
	}
	xLabels := make([]string, 0, returns.Len())
	for _, on := range returns.Dates() {
		xLabels = append(xLabels, on.Format("Jan 02"))
	}

	split := 10
	if len(xLabels) < split {
		split = len(xLabels)
	}

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc("Cumulative Returns Performance", "index = 1"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// RiskReturnScatter renders the volatility/return profile, one labelled dot
// per asset.
func RiskReturnScatter(s *bonddash.Summary) ([]byte, error) {
	var xs, ys []float64
	var notes []chart.Value2
	for _, st := range s.Stats {
		if math.IsNaN(st.Mean) || math.IsNaN(st.Volatility) {
			continue
		}
		x, y := 100*st.Volatility, 100*st.Mean
		xs = append(xs, x)
		ys = append(ys, y)
		notes = append(notes, chart.Value2{XValue: x, YValue: y, Label: st.Asset})
	}
	if len(xs) == 0 {
		return nil, errors.New("no data")
	}

	c := chart.Chart{
		Title: "Risk-Return Profile",
		XAxis: chart.XAxis{Name: "Volatility (%)"},
		YAxis: chart.YAxis{Name: "Average Return (%)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
				},
			},
			chart.AnnotationSeries{Annotations: notes},
		},
	}
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
