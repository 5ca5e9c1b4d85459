package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bonddash"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders the headline view of a selection.
func OverviewMarkdown(o *bonddash.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bond Portfolio Risk Dashboard")

	window := o.Window
	if window.IsZero() {
		window = o.Bounds
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total assets", fmt.Sprintf("%d (%d selected)", o.TotalAssets, o.SelectedAssets)},
			{"Data points", fmt.Sprintf("%d", o.Points)},
			{"Loaded range", o.Bounds.String()},
			{"Selected range", window.String()},
			{"Avg return", pct2(o.AvgReturn)},
			{"Avg volatility", pct2(o.AvgVolatility)},
			{"Risk level", o.RiskLevel},
		},
	}
	doc.Table(table)

	return doc.String()
}
