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

type addExpenseCmd struct {
	date     string
	amount   string
	category string
	note     string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a one-off expense" }
func (*addExpenseCmd) Usage() string {
	return `immo add-expense -d <date> -amount <amount> [-category <category>] [-note <text>]

  Appends an expense to the book. Categories: works, repair, tax, charges,
  insurance, other.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the expense.")
	f.StringVar(&c.amount, "amount", "0", "Expense amount, always positive.")
	f.StringVar(&c.category, "category", "other", "Expense category.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	amount, err := parseAmount(c.amount, book.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := immo.ParseExpenseCategory(c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	expense := immo.Expense{Date: on, Amount: amount, Category: category, Note: c.note}
	if err := expense.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid expense: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendRecord(func(f *os.File) error {
		return immo.EncodeExpense(f, expense)
	})
}
