// Package cmd implements the CLI application to manage a real-estate
// investment book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/immo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "book")
	c.Register(&setLoanCmd{}, "book")
	c.Register(&addRentCmd{}, "book")
	c.Register(&addExpenseCmd{}, "book")
	c.Register(&addPointCmd{}, "book")
	c.Register(&importPointsCmd{}, "book")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&breakevenCmd{}, "reports")
	c.Register(&scenariosCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "book.jsonl", "Path to the book file (JSONL format)")

// DecodeBook reads the app book file.
func DecodeBook() (*immo.Book, error) {
	f, err := os.Open(*bookFile)
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return immo.DecodeBook(f)
}

// EncodeBook rewrites the app book file in its canonical form.
func EncodeBook(b *immo.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("could not write book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return immo.EncodeBook(f, b)
}

// AppendRecord appends a single record to the app book file without
// rewriting it, keeping hand-edits and comments in git history intact.
func AppendRecord(encode func(f *os.File) error) subcommands.ExitStatus {
	f, err := os.OpenFile(*bookFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended record to %s\n", *bookFile)
	return subcommands.ExitSuccess
}
