package renderer

import (
	"bytes"

	"github.com/etnz/bonddash"
	md "github.com/nao1215/markdown"
)

// AnalyticsMarkdown renders the summary statistics, the correlation matrix
// and the portfolio risk metrics of one selection.
func AnalyticsMarkdown(s *bonddash.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Analytics & Risk")

	doc.H2("Summary Statistics")
	stats := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Average Return", "Volatility", "Cumulative", "Obs"},
		Rows:      [][]string{},
	}
	for _, st := range s.Stats {
		stats.Rows = append(stats.Rows, []string{
			st.Asset,
			pct2(st.Mean),
			pct2(st.Volatility),
			bonddash.Pct(st.Cumulative).SignedString(),
			intString(st.Observations),
		})
	}
	doc.Table(stats)

	doc.H2("Asset Correlation Matrix")
	doc.Table(correlationSet(s.Correlation))

	doc.H2("Risk Metrics")
	risk := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Portfolio volatility", pct2(s.AvgVolatility)},
			{"Average return", pct2(s.AvgReturn)},
			{"Worst period", bonddash.Pct(s.WorstPeriod).SignedString()},
			{"Sharpe ratio", num(s.Sharpe)},
			{"Risk level", s.RiskLevel},
		},
	}
	doc.Table(risk)

	return doc.String()
}

// CorrelationMarkdown renders the correlation matrix alone.
func CorrelationMarkdown(c *bonddash.CorrelationMatrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Asset Correlation Matrix")
	doc.Table(correlationSet(c))
	return doc.String()
}

func correlationSet(c *bonddash.CorrelationMatrix) md.TableSet {
	align := make([]md.TableAlignment, len(c.Assets)+1)
	align[0] = md.AlignLeft
	for i := range c.Assets {
		align[i+1] = md.AlignRight
	}
	set := md.TableSet{
		Alignment: align,
		Header:    append([]string{""}, c.Assets...),
		Rows:      [][]string{},
	}
	for i, asset := range c.Assets {
		row := make([]string, 0, len(c.Assets)+1)
		row = append(row, asset)
		for j := range c.Assets {
			row = append(row, corr(c.At(i, j)))
		}
		set.Rows = append(set.Rows, row)
	}
	return set
}
