package immo

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

// ImportMarketPoints reads a tab-separated monthly price-per-m² series, one
// "Mon-YY<TAB>price" line per month (the export format of the usual market
// price sites):
//
//	Apr-22	7710
//	May-22	7673
//
// Each parsed point upserts the book's series by month, so importing the
// same data twice is idempotent. It returns the number of points imported.
func ImportMarketPoints(b *Book, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count, line := 0, 0

	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}

		fields := strings.Split(txt, "\t")
		if len(fields) != 2 {
			return count, fmt.Errorf("line %d: want \"Mon-YY<TAB>price\", got %q", line, txt)
		}

		on, err := parseMonthToken(strings.TrimSpace(fields[0]))
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(fields[1]))
		if err != nil {
			return count, fmt.Errorf("line %d: invalid price %q: %w", line, fields[1], err)
		}

		b.UpsertMarketPoint(on, M(price, b.Currency()))
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("could not read market points: %w", err)
	}
	return count, nil
}

// parseMonthToken parses a "Apr-22" style token into the month's first day.
func parseMonthToken(token string) (date.Date, error) {
	t, err := time.Parse("Jan-06", token)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid month %q want format \"Jan-06\": %w", token, err)
	}
	return date.New(t.Year(), t.Month(), 1), nil
}
