package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/immo"
	"github.com/etnz/immo/date"
	"github.com/etnz/immo/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	date string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the monthly cashflow ledger" }
func (*ledgerCmd) Usage() string {
	return `immo ledger [-d <date>]

  Displays one row per calendar month from the purchase date: prorated rent
  and charges, expenses, loan payment, insurance, net and cumulative cashflow.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Last month of the ledger.")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	end, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := immo.BuildLedger(book, end)
	printMarkdown(renderer.LedgerMarkdown(book.Property().Name, rows))
	return subcommands.ExitSuccess
}
