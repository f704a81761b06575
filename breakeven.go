package immo

import (
	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

// DefaultHorizon bounds the break-even search, in months.
const DefaultHorizon = 120

// BreakEven is the first projected month where selling the property covers
// the cash invested.
type BreakEven struct {
	Date        date.Date
	MonthsAhead int
	MarketValue Money
	NetProceeds Money
	GainLoss    Money
}

// FindBreakEven scans month by month, up to horizonMonths ahead of asOf, for
// the first month where the projected net sale proceeds cover the cash
// invested at that date.
//
// annualGrowth is a fraction per year (0.02 means +2%/year), compounded as a
// monthly rate of annualGrowth/12 on the current valuation. Each candidate
// month recomputes the summary, so loan amortization and rent accrual keep
// moving while the price appreciates.
//
// It returns nil when the valuation is unknown (the search cannot run) or
// when no month within the horizon breaks even. Both are normal outcomes,
// not errors: not every investment breaks even in ten years.
func FindBreakEven(b *Book, asOf date.Date, horizonMonths int, annualGrowth decimal.Decimal) *BreakEven {
	v, ok := Estimate(b, asOf)
	if !ok {
		return nil
	}

	asOf = asOf.MonthStart()
	feeRate := b.Property().SaleFeeRate
	factor := one.Add(annualGrowth.Div(twelve))

	growth := one // (1+monthly)^i
	for i := 0; i <= horizonMonths; i++ {
		if i > 0 {
			growth = growth.Mul(factor).Round(20)
		}
		mv := v.Value.Mul(Q(growth))

		d := asOf.AddMonths(i)
		s := NewSummary(b, d)
		if s.Remaining == nil {
			continue
		}

		_, net := saleOutcome(mv, *s.Remaining, feeRate)
		gain := net.Sub(s.CashInvested)
		if !gain.IsNegative() {
			return &BreakEven{
				Date:        d,
				MonthsAhead: i,
				MarketValue: mv,
				NetProceeds: net,
				GainLoss:    gain,
			}
		}
	}
	return nil
}
