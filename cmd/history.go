package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/immo/date"
	"github.com/etnz/immo/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	date string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the market price series and the loan balance over time" }
func (*historyCmd) Usage() string {
	return `immo history [-d <date>]

  Displays the recorded market price per m² series and the end-of-month
  loan balance up to the given date.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Last month of the history.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.HistoryMarkdown(book, end))
	return subcommands.ExitSuccess
}
