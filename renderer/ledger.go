package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/immo"
	md "github.com/nao1215/markdown"
)

func LedgerMarkdown(name string, rows []immo.LedgerRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Ledger for %s", name))
	if len(rows) == 0 {
		doc.PlainText("No months to report.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Rent", "Charges", "Expenses", "Loan", "Insurance", "Net", "Cumulative"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Month.Format("2006-01"),
			r.Rent.String(),
			r.Charges.String(),
			r.Expenses.String(),
			r.LoanPayment.String(),
			r.Insurance.String(),
			r.Net.SignedString(),
			r.Cumulative.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
