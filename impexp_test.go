package immo

import (
	"strings"
	"testing"

	"github.com/etnz/immo/date"
)

func TestImportMarketPoints(t *testing.T) {
	b := cashBook()
	src := "Apr-22\t7710\nMay-22\t7673\n\nDec-22\t7320\n"

	n, err := ImportMarketPoints(b, strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("imported %d points, want 3", n)
	}

	on, price, ok := b.LatestPoint(date.MustParse("2022-12-31"))
	if !ok {
		t.Fatal("LatestPoint() not found after import")
	}
	if want := date.MustParse("2022-12-01"); on != want {
		t.Errorf("LatestPoint() on %v, want %v", on, want)
	}
	if want := M(7320, "EUR"); !price.Equal(want) {
		t.Errorf("LatestPoint() = %s, want %s", price, want)
	}

	// Re-importing the same data upserts by month instead of duplicating.
	if _, err := ImportMarketPoints(b, strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	var count int
	for range b.MarketPoints() {
		count++
	}
	if count != 3 {
		t.Errorf("series holds %d points after re-import, want 3", count)
	}
}

func TestImportMarketPoints_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "not a month", src: "2022-04\t7710\n"},
		{name: "missing price", src: "Apr-22\n"},
		{name: "bad price", src: "Apr-22\tn/a\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportMarketPoints(cashBook(), strings.NewReader(tc.src)); err == nil {
				t.Error("ImportMarketPoints() succeeded, want an error")
			}
		})
	}
}
