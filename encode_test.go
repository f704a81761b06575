package immo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/immo/date"
)

func TestEncodeDecodeBook(t *testing.T) {
	b := testBook()
	b.AddExpense(Expense{
		Date:     date.MustParse("2022-09-12"),
		Category: Works,
		Note:     "peinture",
		Amount:   M(2400, "EUR"),
	})

	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatal(err)
	}

	p, q := got.Property(), b.Property()
	if p.Name != q.Name || p.PurchaseDate != q.PurchaseDate {
		t.Errorf("property = %+v, want %+v", p, q)
	}
	if !p.PurchasePrice.Equal(q.PurchasePrice) || !p.SurfaceArea.Equal(q.SurfaceArea) {
		t.Errorf("property figures = %s/%s, want %s/%s",
			p.PurchasePrice, p.SurfaceArea, q.PurchasePrice, q.SurfaceArea)
	}

	loan, ok := got.Loan()
	if !ok {
		t.Fatal("decoded book has no loan")
	}
	want, _ := b.Loan()
	if !loan.Principal.Equal(want.Principal) || loan.Years != want.Years || loan.Start != want.Start {
		t.Errorf("loan = %+v, want %+v", loan, want)
	}
	// The loan currency is the property's.
	if loan.Principal.Currency() != "EUR" {
		t.Errorf("loan currency = %q, want EUR", loan.Principal.Currency())
	}

	if rents := got.RentPeriods(); len(rents) != 1 || !rents[0].MonthlyRent.Equal(M(1000, "EUR")) {
		t.Errorf("rents = %+v, want the one tenancy back", rents)
	}
	if exps := got.Expenses(); len(exps) != 1 || exps[0].Note != "peinture" {
		t.Errorf("expenses = %+v, want the one expense back", exps)
	}

	var n int
	for range got.MarketPoints() {
		n++
	}
	if n != 3 {
		t.Errorf("decoded %d market points, want 3", n)
	}
}

func TestEncodeBook_Canonical(t *testing.T) {
	b := testBook()
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("encoded %d lines, want 6", len(lines))
	}
	// Property first, then the loan, the tenancy and the points in order.
	for i, want := range []string{
		`"record":"property"`,
		`"record":"loan"`,
		`"record":"rent"`,
		`{"record":"point","date":"2022-04-01"`,
		`{"record":"point","date":"2022-12-01"`,
		`{"record":"point","date":"2023-06-01"`,
	} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %s, want it to contain %s", i, lines[i], want)
		}
	}
	if !strings.HasPrefix(lines[0], `{"record":"property","name":"studio-15e"`) {
		t.Errorf("line 0 = %s, want the record field first", lines[0])
	}

	// Re-encoding a decoded book is stable.
	got, err := DecodeBook(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	var again bytes.Buffer
	if err := EncodeBook(&again, got); err != nil {
		t.Fatal(err)
	}
	if again.String() != buf.String() {
		t.Errorf("re-encoded book differs:\n%s\nwant:\n%s", again.String(), buf.String())
	}
}

func TestDecodeBook_HandWritten(t *testing.T) {
	// A minimal hand-edited file: single-digit dates, blank lines, no
	// currency (EUR by default), records out of order.
	src := `{"record":"rent","start":"2023-1-15","monthlyRent":"1000","monthlyCharges":"900"}

{"record":"property","name":"t1-bastille","purchaseDate":"2022-8-1","purchasePrice":"186000"}
{"record":"point","date":"2022-12-1","pricePerArea":"7320"}
`
	b, err := DecodeBook(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Currency(); got != "EUR" {
		t.Errorf("Currency() = %q, want the EUR default", got)
	}
	if got := b.Property().PurchaseDate; got != date.MustParse("2022-08-01") {
		t.Errorf("PurchaseDate = %v, want 2022-08-01", got)
	}
	if _, ok := b.Loan(); ok {
		t.Error("Loan() found, want none")
	}
	if rents := b.RentPeriods(); len(rents) != 1 || !rents[0].Ongoing() {
		t.Errorf("rents = %+v, want one ongoing tenancy", rents)
	}
}

func TestDecodeBook_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "empty file", src: ""},
		{name: "no property", src: `{"record":"loan","principal":"1000","years":1,"start":"2022-1-1"}`},
		{name: "unknown record", src: `{"record":"dividend","date":"2022-1-1"}`},
		{name: "not json", src: `record: property`},
		{
			name: "two properties",
			src: `{"record":"property","name":"a","purchaseDate":"2022-1-1","purchasePrice":"1000"}
{"record":"property","name":"b","purchaseDate":"2022-1-1","purchasePrice":"1000"}`,
		},
		{
			name: "negative expense",
			src: `{"record":"property","name":"a","purchaseDate":"2022-1-1","purchasePrice":"1000"}
{"record":"expense","date":"2022-2-1","amount":"-50","category":"works"}`,
		},
		{
			name: "bad expense category",
			src: `{"record":"property","name":"a","purchaseDate":"2022-1-1","purchasePrice":"1000"}
{"record":"expense","date":"2022-2-1","amount":"50","category":"groceries"}`,
		},
		{
			name: "rent ends before it starts",
			src: `{"record":"property","name":"a","purchaseDate":"2022-1-1","purchasePrice":"1000"}
{"record":"rent","start":"2023-5-1","end":"2023-2-1","monthlyRent":"800"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if b, err := DecodeBook(strings.NewReader(tc.src)); err == nil {
				t.Errorf("DecodeBook() = %+v, want an error", b)
			}
		})
	}
}
