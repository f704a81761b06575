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

type scenariosCmd struct {
	date        string
	multipliers string
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "price a sale at several market value multipliers" }
func (*scenariosCmd) Usage() string {
	return `immo scenarios [-d <date>] [-m <multipliers>]

  Sweeps the current market value by a list of multipliers and prices the
  resulting sale against the cash invested. The sweep is anchored on the
  latest market point.
`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the hypothetical sale.")
	f.StringVar(&c.multipliers, "m", "", "Comma-separated price multipliers (default 0.90,0.95,1.00,1.05,1.10).")
}

func (c *scenariosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	multipliers, err := parseMultipliers(c.multipliers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	set := immo.SaleScenarios(book, on, multipliers)
	if set == nil {
		fmt.Fprintln(os.Stderr, "Error: scenarios need a loan, a surface area and a market point")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScenariosMarkdown(set))
	return subcommands.ExitSuccess
}
