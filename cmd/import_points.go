package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/immo"
	"github.com/google/subcommands"
)

type importPointsCmd struct{}

func (*importPointsCmd) Name() string     { return "import-points" }
func (*importPointsCmd) Synopsis() string { return "import a monthly market price series" }
func (*importPointsCmd) Usage() string {
	return `immo import-points [<file>]

  Imports a tab-separated "Mon-YY<TAB>price" monthly series, the export
  format of the usual market price sites, and rewrites the book with the
  merged series. Reads stdin when no file is given. Importing the same data
  twice is idempotent.
`
}

func (c *importPointsCmd) SetFlags(f *flag.FlagSet) {}

func (c *importPointsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	var r io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening series file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	n, err := immo.ImportMarketPoints(book, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing points: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d market points into %s\n", n, *bookFile)
	return subcommands.ExitSuccess
}
