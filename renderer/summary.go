// Package renderer turns the engine's reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/immo"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *immo.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s on %s", s.Name, s.Date))

	doc.H2("Acquisition")
	acquisition := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Acquisition Cost", md.Bold(s.AcquisitionCost.String())},
		Rows:      [][]string{},
	}
	if s.Borrowed != nil {
		acquisition.Rows = append(acquisition.Rows, []string{"Borrowed Capital", s.Borrowed.String()})
	}
	acquisition.Rows = append(acquisition.Rows, []string{"Down Payment", s.DownPayment.String()})
	doc.Table(acquisition)

	doc.H2("Operations since purchase")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Flow", "Total"},
		Rows: [][]string{
			{"Rent", s.RentTotal.String()},
			{"Recoverable Charges", s.ChargesTotal.String()},
			{"Expenses", s.ExpensesTotal.String()},
			{"Loan Payments", s.LoanPaymentTotal.String()},
			{"Loan Insurance", s.InsuranceTotal.String()},
		},
	})

	if s.Remaining != nil {
		doc.H2("Loan")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Remaining Balance", md.Bold(s.Remaining.String())},
			Rows: [][]string{
				{"Monthly Payment", s.MonthlyPayment.String()},
				{"Capital Paid", s.CapitalPaid.String()},
				{"Interest Paid", s.InterestPaid.String()},
			},
		})
	}

	doc.H2("Cashflow")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Cash Invested", md.Bold(s.CashInvested.String())},
		Rows: [][]string{
			{"Real Cashflow", s.CashflowReal.SignedString()},
			{"Economic Cashflow", s.CashflowEconomic.SignedString()},
		},
	})

	if s.Valuation != nil {
		doc.H2("Market")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Market Value", md.Bold(s.Valuation.Value.String())},
			Rows:      [][]string{},
		}
		if s.Valuation.Manual {
			table.Rows = append(table.Rows, []string{"Source", "manual override"})
		} else {
			table.Rows = append(table.Rows,
				[]string{"Price per m²", s.Valuation.PricePerArea.String()},
				[]string{"Adjusted per m²", s.Valuation.AdjustedPerArea.String()},
				[]string{"Market Point", s.Valuation.PointDate.String()},
			)
		}
		if s.GainIfSold != nil {
			table.Rows = append(table.Rows,
				[]string{fmt.Sprintf("Selling Fees (%s)", s.SaleFeeRate), s.SellingFees.String()},
				[]string{"Net Proceeds", s.NetProceeds.String()},
				[]string{"Gain if Sold", s.GainIfSold.SignedString()},
			)
		}
		doc.Table(table)
	}

	return doc.String()
}
