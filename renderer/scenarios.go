package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/immo"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

func ScenariosMarkdown(set *immo.ScenarioSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sale Scenarios on %s", set.Date))

	doc.H2("Base Valuation")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Market Value", md.Bold(set.Base.MarketValue.String())},
		Rows: [][]string{
			{fmt.Sprintf("Price per m² (point %s)", set.Base.PointDate), set.Base.PricePerArea.String()},
			{"Goodwill per m²", set.Base.GoodwillPerArea.String()},
			{"Adjusted per m²", set.Base.AdjustedPerArea.String()},
			{"Flat Value", set.Base.FlatValue.String()},
			{"Parking", set.Base.ParkingValue.String()},
			{"Cash Invested", set.CashInvested.String()},
		},
	})

	doc.H2("Price Sweep")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Multiplier", "Market Value", "Fees", "Net Proceeds", "Gain / Loss"},
		Rows:   [][]string{},
	}
	for _, row := range set.Rows {
		table.Rows = append(table.Rows, []string{
			row.Multiplier.String(),
			row.MarketValue.String(),
			row.SellingFees.String(),
			row.NetProceeds.String(),
			row.GainLoss.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func ProjectionMarkdown(name string, rows []immo.ProjectionRow, annualGrowth decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	growth := annualGrowth.Mul(decimal.NewFromInt(100)).StringFixed(1)
	doc.H1(fmt.Sprintf("Sale Projection for %s (%s%%/year)", name, growth))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Years", "Sell Date", "Market Value", "Remaining", "Net Proceeds", "Gain / Loss"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		remaining, net, gain := "-", "-", "-"
		if row.Remaining != nil {
			remaining = row.Remaining.String()
			net = row.NetProceeds.String()
			gain = row.GainLoss.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Years),
			row.SellDate.String(),
			row.MarketValue.String(),
			remaining,
			net,
			gain,
		})
	}
	doc.Table(table)

	return doc.String()
}
