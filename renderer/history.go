package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/immo"
	"github.com/etnz/immo/date"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(b *immo.Book, end date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("History for %s", b.Property().Name))
	doc.Build()

	// Market price series, when the book has one.
	ConditionalBlock(&buf, func(w io.Writer) bool {
		section := md.NewMarkdown(w)
		section.H2("Market Price per m²")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Month", "Price"},
			Rows:      [][]string{},
		}
		for on, price := range b.MarketPoints() {
			table.Rows = append(table.Rows, []string{on.Format("2006-01"), price.String()})
		}
		if len(table.Rows) == 0 {
			return false
		}
		section.Table(table)
		section.Build()
		return true
	})

	// Loan balance, when the book has a loan.
	ConditionalBlock(&buf, func(w io.Writer) bool {
		loan, ok := b.Loan()
		if !ok {
			return false
		}
		section := md.NewMarkdown(w)
		section.H2("Loan Balance")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Month", "Remaining"},
			Rows:      [][]string{},
		}
		for _, p := range loan.BalanceSeries(b.Property().PurchaseDate, end) {
			remaining := "-"
			if p.Remaining != nil {
				remaining = p.Remaining.String()
			}
			table.Rows = append(table.Rows, []string{p.Month.Format("2006-01"), remaining})
		}
		section.Table(table)
		section.Build()
		return true
	})

	return buf.String()
}
