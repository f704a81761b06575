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

type projectCmd struct {
	date   string
	growth string
	years  string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a sale a few years ahead" }
func (*projectCmd) Usage() string {
	return `immo project [-d <date>] [-growth <percent>] [-years <offsets>]

  Prices a sale at each future year offset: the valuation compounds at the
  given annual growth rate and the loan balance is recomputed at each sell
  date. Rent and expenses between now and the sale are not accrued.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date the projection starts from.")
	f.StringVar(&c.growth, "growth", "0", "Annual market growth in percent (2 means +2%/year).")
	f.StringVar(&c.years, "years", "", "Comma-separated year offsets (default 1,2,3,4,5).")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	growth, err := parseGrowth(c.growth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	years, err := parseYears(c.years)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := immo.ProjectYears(book, on, growth, years)
	if rows == nil {
		fmt.Fprintln(os.Stderr, "Error: the market value is unknown, record a market point or an override first")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProjectionMarkdown(book.Property().Name, rows, growth))
	return subcommands.ExitSuccess
}
