package immo

import (
	"testing"

	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

// breakEvenBook is the leveraged studio with a soft market: the sale starts
// under water, so the break-even search has something to find.
func breakEvenBook() *Book {
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
	b.UpsertMarketPoint(date.MustParse("2022-12-01"), M(6200, "EUR"))
	return b
}

func TestFindBreakEven(t *testing.T) {
	b := breakEvenBook()
	on := date.MustParse("2023-03-31")
	growth := decimal.NewFromFloat(0.03)

	be := FindBreakEven(b, on, DefaultHorizon, growth)
	if be == nil {
		t.Fatal("FindBreakEven() = nil, want a break-even month within ten years")
	}
	if be.MonthsAhead <= 0 || be.MonthsAhead > DefaultHorizon {
		t.Fatalf("MonthsAhead = %d, want within (0, %d]", be.MonthsAhead, DefaultHorizon)
	}
	if want := date.MustParse("2023-03-01").AddMonths(be.MonthsAhead); be.Date != want {
		t.Errorf("Date = %v, want %v", be.Date, want)
	}
	if be.GainLoss.IsNegative() {
		t.Errorf("GainLoss = %s, want non-negative at break-even", be.GainLoss)
	}

	// The month just before is still under water, else the search would
	// have stopped there.
	if earlier := FindBreakEven(b, on, be.MonthsAhead-1, growth); earlier != nil {
		t.Errorf("shorter horizon found break-even at %d months, want none before %d",
			earlier.MonthsAhead, be.MonthsAhead)
	}
}

func TestFindBreakEven_GrowthMonotonicity(t *testing.T) {
	b := breakEvenBook()
	on := date.MustParse("2023-03-31")

	slow := FindBreakEven(b, on, DefaultHorizon, decimal.NewFromFloat(0.02))
	fast := FindBreakEven(b, on, DefaultHorizon, decimal.NewFromFloat(0.06))
	if slow == nil || fast == nil {
		t.Fatalf("FindBreakEven() = %v, %v, want both found", slow, fast)
	}
	// Faster price growth can only break even sooner.
	if fast.MonthsAhead > slow.MonthsAhead {
		t.Errorf("break-even at 6%% growth after %d months, at 2%% after %d: want sooner or equal",
			fast.MonthsAhead, slow.MonthsAhead)
	}
}

func TestFindBreakEven_NoValuation(t *testing.T) {
	if be := FindBreakEven(cashBook(), date.MustParse("2024-01-01"), DefaultHorizon, decimal.NewFromFloat(0.02)); be != nil {
		t.Errorf("FindBreakEven() = %+v, want nil without a valuation", be)
	}
}

func TestFindBreakEven_HorizonExhausted(t *testing.T) {
	b := breakEvenBook()
	// A shrinking market never covers the cash invested.
	be := FindBreakEven(b, date.MustParse("2023-03-31"), 24, decimal.NewFromFloat(-0.10))
	if be != nil {
		t.Errorf("FindBreakEven() = %+v, want nil within a 24-month horizon", be)
	}
}
