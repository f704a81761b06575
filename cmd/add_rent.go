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

type addRentCmd struct {
	start   string
	end     string
	rent    string
	charges string
}

func (*addRentCmd) Name() string     { return "add-rent" }
func (*addRentCmd) Synopsis() string { return "record a tenancy period" }
func (*addRentCmd) Usage() string {
	return `immo add-rent -start <date> [-end <date>] -rent <amount> [-charges <amount>]

  Appends a tenancy to the book. Omitting -end records an ongoing tenancy.
  Months partially covered are prorated by days in the reports.
`
}

func (c *addRentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "First day of the tenancy.")
	f.StringVar(&c.end, "end", "", "Last day of the tenancy (omit for an ongoing one).")
	f.StringVar(&c.rent, "rent", "0", "Monthly rent, excluding charges.")
	f.StringVar(&c.charges, "charges", "0", "Monthly recoverable charges.")
}

func (c *addRentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := book.Currency()

	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		return subcommands.ExitUsageError
	}
	var end date.Date
	if c.end != "" {
		end, err = date.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -end: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	rent, err := parseAmount(c.rent, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -rent: %v\n", err)
		return subcommands.ExitUsageError
	}
	charges, err := parseAmount(c.charges, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -charges: %v\n", err)
		return subcommands.ExitUsageError
	}

	period := immo.RentPeriod{Start: start, End: end, MonthlyRent: rent, MonthlyCharges: charges}
	if err := period.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid tenancy: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(func(f *os.File) error {
		return immo.EncodeRentPeriod(f, period)
	})
}
