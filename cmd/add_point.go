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

type addPointCmd struct {
	date  string
	price string
}

func (*addPointCmd) Name() string     { return "add-point" }
func (*addPointCmd) Synopsis() string { return "record a market price point" }
func (*addPointCmd) Usage() string {
	return `immo add-point -d <date> -price <amount>

  Appends a market price per m² observation. Points are keyed by month: a
  point for an already-recorded month replaces the previous value when the
  book is read back.
`
}

func (c *addPointCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Month of the observation (any day of the month).")
	f.StringVar(&c.price, "price", "0", "Observed price per m².")
}

func (c *addPointCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parseAmount(c.price, book.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -price: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !price.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: price must be positive, got %s\n", price)
		return subcommands.ExitUsageError
	}

	return AppendRecord(func(f *os.File) error {
		return immo.EncodeMarketPoint(f, on, price)
	})
}
