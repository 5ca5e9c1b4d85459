package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bonddash"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders a percent-formatted table, date column first.
func TableMarkdown(title string, t *bonddash.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(tableSet(t, pct))
	return doc.String()
}

// NumTableMarkdown renders a plain-number table, for absolute key-rate
// changes.
func NumTableMarkdown(title string, t *bonddash.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	doc.Table(tableSet(t, num))
	return doc.String()
}

func tableSet(t *bonddash.Table, format func(float64) string) md.TableSet {
	cols := t.Columns()
	align := make([]md.TableAlignment, len(cols)+1)
	align[0] = md.AlignLeft
	for i := range cols {
		align[i+1] = md.AlignRight
	}
	set := md.TableSet{
		Alignment: align,
		Header:    append([]string{"Date"}, cols...),
		Rows:      [][]string{},
	}
	for on, row := range t.Rows() {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, on.String())
		for _, v := range row {
			cells = append(cells, format(v))
		}
		set.Rows = append(set.Rows, cells)
	}
	return set
}

// SensitivitiesMarkdown renders the duration, convexity and loadings figures
// per asset. Assets without a loadings row show the alignment problem
// inline, the other rows are unaffected.
func SensitivitiesMarkdown(m *bonddash.MarketData, l *bonddash.Loadings, skipped map[string]error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Interest-Rate Sensitivities")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset", "Duration", "Convexity", "−D", "½·C"},
		Rows:      [][]string{},
	}
	for _, asset := range m.Assets() {
		if err, ok := skipped[asset]; ok {
			table.Rows = append(table.Rows, []string{asset, missing, missing, missing, err.Error()})
			continue
		}
		d, _ := m.Duration(asset)
		c, _ := m.Convexity(asset)
		row, err := l.Row(asset)
		if err != nil {
			table.Rows = append(table.Rows, []string{asset, num(d), num(c), missing, err.Error()})
			continue
		}
		table.Rows = append(table.Rows, []string{asset, num(d), num(c), num(row[0]), num(row[1])})
	}
	doc.Table(table)

	return doc.String()
}

// PricesMarkdown renders the latest asset prices as money in the display
// currency.
func PricesMarkdown(m *bonddash.MarketData, assets []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Latest Prices (%s)", m.Currency()))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Date", "Price"},
		Rows:      [][]string{},
	}
	prices := m.Prices()
	days := prices.Dates()
	if len(days) == 0 {
		doc.PlainText("no prices loaded")
		return doc.String()
	}
	last := days[len(days)-1]
	row, _ := prices.Get(last)
	for _, asset := range assets {
		j := prices.Column(asset)
		if j < 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{asset, last.String(), bonddash.M(row[j], m.Currency()).String()})
	}
	doc.Table(table)

	return doc.String()
}
