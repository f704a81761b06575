package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/immo"
	"github.com/shopspring/decimal"
)

// parseGrowth parses an annual growth flag given in percent ("2", "-1.5")
// into the plain fraction the engine expects.
func parseGrowth(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid growth %q, want a percentage like 2 or -1.5: %w", s, err)
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

// parseMultipliers parses a comma-separated list of price multipliers
// ("0.9,1,1.1"). An empty string selects the default sweep.
func parseMultipliers(s string) ([]immo.Quantity, error) {
	if s == "" {
		return nil, nil
	}
	var multipliers []immo.Quantity
	for _, tok := range strings.Split(s, ",") {
		d, err := decimal.NewFromString(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("invalid multiplier %q: %w", tok, err)
		}
		if !d.IsPositive() {
			return nil, fmt.Errorf("multiplier %q must be positive", tok)
		}
		multipliers = append(multipliers, immo.Q(d))
	}
	return multipliers, nil
}

// parseYears parses a comma-separated list of year offsets ("1,2,5"). An
// empty string selects the default horizon.
func parseYears(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var years []int
	for _, tok := range strings.Split(s, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || y < 1 {
			return nil, fmt.Errorf("invalid year offset %q, want a positive integer", tok)
		}
		years = append(years, y)
	}
	return years, nil
}

// parseAmount parses a monetary flag value in the book currency.
func parseAmount(s, currency string) (immo.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return immo.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return immo.M(d, currency), nil
}
