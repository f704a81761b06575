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

type initCmd struct {
	name     string
	currency string
	date     string
	price    string
	notary   string
	agency   string
	parking  string
	surface  float64
	goodwill string
	saleFee  float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new book file for a property" }
func (*initCmd) Usage() string {
	return `immo init -name <name> -date <date> -price <amount> [options]

  Creates the book file with the property record. The book is a JSONL file,
  keep it under version control.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Property name.")
	f.StringVar(&c.currency, "currency", "EUR", "Reporting currency.")
	f.StringVar(&c.date, "date", "", "Purchase date.")
	f.StringVar(&c.price, "price", "0", "Purchase price.")
	f.StringVar(&c.notary, "notary", "0", "Notary fees.")
	f.StringVar(&c.agency, "agency", "0", "Agency fees on purchase.")
	f.StringVar(&c.parking, "parking", "0", "Parking value, if bought together.")
	f.Float64Var(&c.surface, "surface", 0, "Surface area in m² (0 when unknown).")
	f.StringVar(&c.goodwill, "goodwill", "0", "Manual per-m² adjustment on the market price.")
	f.Float64Var(&c.saleFee, "salefee", 0, "Agency fee on a sale, in percent of the price.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*bookFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: book file %q already exists\n", *bookFile)
		return subcommands.ExitFailure
	}

	purchase, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing purchase date: %v\n", err)
		return subcommands.ExitUsageError
	}

	amounts := make(map[string]immo.Money, 5)
	for flagName, value := range map[string]string{
		"price": c.price, "notary": c.notary, "agency": c.agency,
		"parking": c.parking, "goodwill": c.goodwill,
	} {
		m, err := parseAmount(value, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -%s: %v\n", flagName, err)
			return subcommands.ExitUsageError
		}
		amounts[flagName] = m
	}

	property := immo.Property{
		Name:            c.name,
		Currency:        c.currency,
		PurchaseDate:    purchase,
		PurchasePrice:   amounts["price"],
		NotaryFees:      amounts["notary"],
		AgencyFees:      amounts["agency"],
		Parking:         amounts["parking"],
		SurfaceArea:     immo.Q(c.surface),
		GoodwillPerArea: amounts["goodwill"],
		SaleFeeRate:     immo.P(c.saleFee),
	}
	if err := property.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid property: %v\n", err)
		return subcommands.ExitUsageError
	}

	book := immo.NewBook(property)
	if err := EncodeBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created book %s for %q\n", *bookFile, c.name)
	return subcommands.ExitSuccess
}
