package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/immo"
	"github.com/etnz/immo/date"
	"github.com/google/subcommands"
)

type setLoanCmd struct {
	principal string
	rate      float64
	years     int
	insurance string
	start     string
}

func (*setLoanCmd) Name() string     { return "set-loan" }
func (*setLoanCmd) Synopsis() string { return "set or replace the loan of the property" }
func (*setLoanCmd) Usage() string {
	return `immo set-loan -principal <amount> -rate <percent> -years <n> [-insurance <amount>] [-start <date>]

  Sets the mortgage attached to the property. A property carries at most one
  loan, setting it again replaces the previous one and rewrites the book in
  its canonical form.
`
}

func (c *setLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.principal, "principal", "0", "Borrowed capital.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.years, "years", 0, "Loan term in years.")
	f.StringVar(&c.insurance, "insurance", "0", "Monthly insurance premium.")
	f.StringVar(&c.start, "start", "", "First installment month (defaults to the purchase date).")
}

func (c *setLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	currency := book.Currency()
	principal, err := parseAmount(c.principal, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -principal: %v\n", err)
		return subcommands.ExitUsageError
	}
	insurance, err := parseAmount(c.insurance, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -insurance: %v\n", err)
		return subcommands.ExitUsageError
	}

	start := book.Property().PurchaseDate
	if c.start != "" {
		start, err = date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	loan := immo.Loan{
		Principal:        principal,
		AnnualRate:       immo.P(c.rate),
		Years:            c.years,
		MonthlyInsurance: insurance,
		Start:            start,
	}
	if err := loan.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid loan: %v\n", err)
		return subcommands.ExitUsageError
	}

	book.SetLoan(loan)
	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set loan of %s over %d years on %s\n", loan.Principal, loan.Years, *bookFile)
	return subcommands.ExitSuccess
}
