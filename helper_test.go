package immo

import "github.com/etnz/immo/date"

// testBook returns the book of a typical leveraged studio purchase: bought
// 2022-08-01, financed by a 200k 2% 20-year loan, rented from mid January
// 2023, with a market price series starting in April 2022.
func testBook() *Book {
	b := NewBook(Property{
		Name:            "studio-15e",
		Currency:        "EUR",
		PurchaseDate:    date.MustParse("2022-08-01"),
		PurchasePrice:   M(186000, "EUR"),
		NotaryFees:      M(14000, "EUR"),
		AgencyFees:      M(5000, "EUR"),
		Parking:         M(15000, "EUR"),
		SurfaceArea:     Q(31.5),
		GoodwillPerArea: M(250, "EUR"),
		SaleFeeRate:     P(4),
	})
	b.SetLoan(Loan{
		Principal:        M(200000, "EUR"),
		AnnualRate:       P(2),
		Years:            20,
		MonthlyInsurance: M(30, "EUR"),
		Start:            date.MustParse("2022-08-01"),
	})
	b.AddRentPeriod(RentPeriod{
		Start:          date.MustParse("2023-01-15"),
		MonthlyRent:    M(1000, "EUR"),
		MonthlyCharges: M(900, "EUR"),
	})
	b.UpsertMarketPoint(date.MustParse("2022-04-01"), M(7710, "EUR"))
	b.UpsertMarketPoint(date.MustParse("2022-12-01"), M(7320, "EUR"))
	b.UpsertMarketPoint(date.MustParse("2023-06-01"), M(7354, "EUR"))
	return b
}

// cashBook returns the book of an unleveraged purchase with no market data.
func cashBook() *Book {
	b := NewBook(Property{
		Name:          "cave-9e",
		Currency:      "EUR",
		PurchaseDate:  date.MustParse("2023-03-10"),
		PurchasePrice: M(30000, "EUR"),
		NotaryFees:    M(2500, "EUR"),
		SaleFeeRate:   P(5),
	})
	return b
}
