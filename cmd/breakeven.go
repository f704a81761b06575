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

type breakevenCmd struct {
	date    string
	growth  string
	horizon int
}

func (*breakevenCmd) Name() string     { return "breakeven" }
func (*breakevenCmd) Synopsis() string { return "find the first month where selling covers the cash invested" }
func (*breakevenCmd) Usage() string {
	return `immo breakeven [-d <date>] [-growth <percent>] [-horizon <months>]

  Scans month by month for the first month where the projected net sale
  proceeds cover the cash invested, with the market value appreciating at
  the given annual growth rate.
`
}

func (c *breakevenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date the search starts from.")
	f.StringVar(&c.growth, "growth", "0", "Annual market growth in percent (2 means +2%/year).")
	f.IntVar(&c.horizon, "horizon", immo.DefaultHorizon, "Search horizon in months.")
}

func (c *breakevenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	growth, err := parseGrowth(c.growth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, ok := immo.Estimate(book, asOf); !ok {
		fmt.Fprintln(os.Stderr, "Error: the market value is unknown, record a market point or an override first")
		return subcommands.ExitFailure
	}

	be := immo.FindBreakEven(book, asOf, c.horizon, growth)
	printMarkdown(renderer.BreakEvenMarkdown(be, c.horizon, growth))
	return subcommands.ExitSuccess
}
