package immo

import (
	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// monthlyRate returns the loan rate per month as a plain fraction.
func (l Loan) monthlyRate() decimal.Decimal { return l.AnnualRate.Fraction().Div(twelve) }

// months returns the total number of monthly installments.
func (l Loan) months() int { return l.Years * 12 }

// elapsed returns the number of monthly installments due by 'on'. It is never
// negative: a date before the loan start means no installment yet.
func (l Loan) elapsed(on date.Date) int {
	n := date.MonthsBetween(l.Start, on)
	if n < 0 {
		n = 0
	}
	return n
}

// powInt returns base^n for n >= 0, rounding intermediate products to keep
// the digit count bounded. The rounding is far below cent significance.
func powInt(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for range n {
		result = result.Mul(base).Round(20)
	}
	return result
}

// Payment returns the fixed monthly annuity payment, rounded to the cent:
//
//	M = P·r / (1 - (1+r)^-n)
//
// where r is the monthly rate and n the number of installments. A zero-rate
// loan degenerates to principal/n.
func (l Loan) Payment() Money {
	n := l.months()
	r := l.monthlyRate()
	if r.IsZero() {
		return l.Principal.Div(Q(n)).Round()
	}
	denom := one.Sub(one.Div(powInt(one.Add(r), n)))
	return l.Principal.Mul(Q(r)).Div(Q(denom)).Round()
}

// Amortization is the state of a loan schedule after a number of monthly
// installments.
type Amortization struct {
	Payment      Money // monthly payment; adjusted down on the final installment
	Remaining    Money // outstanding principal (the CRD)
	CapitalPaid  Money
	InterestPaid Money
}

// BalanceAfter replays the amortization table month by month and returns the
// schedule state after monthsElapsed installments (capped at the loan term).
//
// Every step rounds to the cent: interest first, then the principal portion,
// then the new balance. This is how bank statements amortize, and a closed
// form would drift from them at the cent level, so the iteration is the
// canonical computation. The final installment clamps the principal portion
// to the remaining balance so the schedule ends exactly at zero.
func (l Loan) BalanceAfter(monthsElapsed int) Amortization {
	m := min(monthsElapsed, l.months())
	r := l.monthlyRate()
	pay := l.Payment()

	crd := l.Principal.Round()
	capPaid := M(0, l.Principal.cur)
	intPaid := M(0, l.Principal.cur)

	for range m {
		interest := crd.Mul(Q(r)).Round()
		principal := pay.Sub(interest).Round()
		if principal.IsNegative() {
			principal = M(0, l.Principal.cur)
		}

		// last installment: avoid a negative balance
		if principal.GreaterThan(crd) {
			principal = crd
			pay = interest.Add(principal).Round()
		}

		crd = crd.Sub(principal).Round()
		capPaid = capPaid.Add(principal)
		intPaid = intPaid.Add(interest)

		if !crd.IsPositive() {
			crd = M(0, l.Principal.cur)
			break
		}
	}

	return Amortization{
		Payment:      pay,
		Remaining:    crd.Round(),
		CapitalPaid:  capPaid.Round(),
		InterestPaid: intPaid.Round(),
	}
}

// RemainingAt returns the outstanding balance on a given date.
func (l Loan) RemainingAt(on date.Date) Money {
	return l.BalanceAfter(l.elapsed(on)).Remaining
}

// BalancePoint is the remaining balance at the end of one calendar month.
// Remaining is nil for months before the loan starts.
type BalancePoint struct {
	Month     date.Date
	Remaining *Money
}

// BalanceSeries returns the end-of-month remaining balance for every month
// from 'from' to 'to' inclusive. The first month of the loan already carries
// one installment.
func (l Loan) BalanceSeries(from, to date.Date) []BalancePoint {
	var series []BalancePoint
	for m := range date.Months(from, to) {
		idx := date.MonthsBetween(l.Start, m)
		if idx < 0 {
			series = append(series, BalancePoint{Month: m})
			continue
		}
		remaining := l.BalanceAfter(idx + 1).Remaining
		series = append(series, BalancePoint{Month: m, Remaining: &remaining})
	}
	return series
}
