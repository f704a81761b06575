package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/immo"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

func BreakEvenMarkdown(be *immo.BreakEven, horizonMonths int, annualGrowth decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Break-even on Sale")
	growth := annualGrowth.Mul(decimal.NewFromInt(100)).StringFixed(1)

	if be == nil {
		doc.PlainText(fmt.Sprintf(
			"No break-even within %d months at %s%%/year price growth.", horizonMonths, growth))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf(
		"Selling covers the cash invested in %s (%d months ahead, at %s%%/year price growth).",
		be.Date.Format("January 2006"), be.MonthsAhead, growth))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Value"},
		Rows: [][]string{
			{"Projected Market Value", be.MarketValue.String()},
			{"Net Proceeds", be.NetProceeds.String()},
			{"Gain", be.GainLoss.SignedString()},
		},
	})

	return doc.String()
}
