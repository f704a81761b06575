package immo

import (
	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

// DefaultMultipliers is the standard sweep around the current market value.
var DefaultMultipliers = []Quantity{Q(0.90), Q(0.95), Q(1.00), Q(1.05), Q(1.10)}

// DefaultYears is the standard forward-projection horizon.
var DefaultYears = []int{1, 2, 3, 4, 5}

// ScenarioBase records the market inputs the multiplier sweep is anchored on.
type ScenarioBase struct {
	PointDate       date.Date
	PricePerArea    Money
	GoodwillPerArea Money
	AdjustedPerArea Money
	FlatValue       Money // adjusted price per m² times surface area
	ParkingValue    Money
	MarketValue     Money // flat value plus parking
}

// ScenarioRow is a hypothetical sale at one price multiplier.
type ScenarioRow struct {
	Multiplier  Quantity
	MarketValue Money
	SellingFees Money
	NetProceeds Money
	GainLoss    Money
}

// ScenarioSet is a multiplier sweep over the current market value.
type ScenarioSet struct {
	Date         date.Date
	Base         ScenarioBase
	CashInvested Money
	Rows         []ScenarioRow
}

// SaleScenarios applies each multiplier to the current market value and
// prices the resulting sale against the as-of cash invested.
//
// The sweep is deliberately anchored on the latest market point, never on
// the manual override, to keep it tied to the observed price series. It
// returns nil when the loan balance, the surface area or the market series
// is unavailable.
func SaleScenarios(b *Book, on date.Date, multipliers []Quantity) *ScenarioSet {
	if len(multipliers) == 0 {
		multipliers = DefaultMultipliers
	}

	s := NewSummary(b, on)
	if s.Remaining == nil {
		return nil
	}

	p := b.Property()
	if p.SurfaceArea.IsZero() {
		return nil
	}
	pointDate, price, ok := b.LatestPoint(on)
	if !ok {
		return nil
	}

	adjusted := price.Add(p.GoodwillPerArea)
	flat := adjusted.Mul(p.SurfaceArea)
	base := flat.Add(p.Parking)

	set := &ScenarioSet{
		Date:         on,
		CashInvested: s.CashInvested,
		Base: ScenarioBase{
			PointDate:       pointDate,
			PricePerArea:    price,
			GoodwillPerArea: p.GoodwillPerArea,
			AdjustedPerArea: adjusted,
			FlatValue:       flat,
			ParkingValue:    p.Parking,
			MarketValue:     base,
		},
	}

	for _, mult := range multipliers {
		mv := base.Mul(mult)
		fees, net := saleOutcome(mv, *s.Remaining, p.SaleFeeRate)
		set.Rows = append(set.Rows, ScenarioRow{
			Multiplier:  mult,
			MarketValue: mv,
			SellingFees: fees,
			NetProceeds: net,
			GainLoss:    net.Sub(s.CashInvested),
		})
	}
	return set
}

// ProjectionRow is a hypothetical sale at a future year offset. NetProceeds
// and GainLoss are nil when the loan balance at the sell date is unknown;
// the row then reports the projected valuation only.
type ProjectionRow struct {
	Years       int
	SellDate    date.Date
	MarketValue Money
	Remaining   *Money
	NetProceeds *Money
	GainLoss    *Money
}

// ProjectYears prices a sale at each future year offset: the valuation
// compounds at annualGrowth (a fraction per year), the loan balance is
// recomputed at the sell date, and the gain is measured against the as-of
// cash invested held constant. Not accruing future rent and expenses between
// now and the sale year is an explicit simplification.
//
// It returns nil when the current valuation is unknown.
func ProjectYears(b *Book, on date.Date, annualGrowth decimal.Decimal, years []int) []ProjectionRow {
	if len(years) == 0 {
		years = DefaultYears
	}

	v, ok := Estimate(b, on)
	if !ok {
		return nil
	}
	s := NewSummary(b, on)
	loan, hasLoan := b.Loan()
	factor := one.Add(annualGrowth)

	var rows []ProjectionRow
	for _, y := range years {
		sellDate := on.AddYears(y)
		row := ProjectionRow{
			Years:       y,
			SellDate:    sellDate,
			MarketValue: v.Value.Mul(Q(powInt(factor, y))),
		}

		if hasLoan {
			// inclusive month count, kept from the statement-style schedule
			n := date.MonthsBetween(loan.Start, sellDate) + 1
			if n < 0 {
				n = 0
			}
			remaining := loan.BalanceAfter(n).Remaining
			row.Remaining = &remaining

			_, net := saleOutcome(row.MarketValue, remaining, b.Property().SaleFeeRate)
			gain := net.Sub(s.CashInvested)
			row.NetProceeds, row.GainLoss = &net, &gain
		}
		rows = append(rows, row)
	}
	return rows
}
