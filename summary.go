package immo

import "github.com/etnz/immo/date"

// Summary provides a comprehensive, at-a-glance snapshot of the investment's
// state on a given date: acquisition cost, operating totals, loan schedule
// state, cashflows, valuation and sale economics.
//
// Figures that cannot be computed from the available records (no loan, no
// market point, no surface area) are nil, never zero: a missing valuation
// must not read as a worthless property.
type Summary struct {
	Date     date.Date
	Name     string
	Currency string

	// Acquisition
	AcquisitionCost Money
	Borrowed        *Money // nil without a loan
	DownPayment     Money

	// Operating totals since the purchase date
	RentTotal     Money
	ChargesTotal  Money
	ExpensesTotal Money

	// Loan schedule state since the loan start date
	MonthlyPayment   *Money // nil without a loan
	LoanPaymentTotal Money
	InsuranceTotal   Money
	CapitalPaid      Money
	InterestPaid     Money
	Remaining        *Money // outstanding balance (CRD); nil without a loan

	// Cashflows
	CashflowReal     Money // rent + charges - expenses - payments - insurance
	CashflowEconomic Money // real cashflow plus capital repaid
	CashInvested     Money // down payment minus cumulated real cashflow

	// Market and sale economics
	Valuation   *Valuation // nil when the valuation is unknown
	SaleFeeRate Percent
	SellingFees *Money
	NetProceeds *Money
	GainIfSold  *Money
}

// NewSummary computes the snapshot of the book on a given date.
func NewSummary(b *Book, on date.Date) *Summary {
	p := b.Property()
	s := &Summary{
		Date:        on,
		Name:        p.Name,
		Currency:    b.Currency(),
		SaleFeeRate: p.SaleFeeRate,
	}

	// Acquisition cost and down payment.
	s.AcquisitionCost = p.AcquisitionCost()
	loan, hasLoan := b.Loan()
	s.DownPayment = s.AcquisitionCost
	if hasLoan && loan.Principal.IsPositive() {
		borrowed := loan.Principal
		s.Borrowed = &borrowed
		s.DownPayment = s.AcquisitionCost.Sub(borrowed)
	}
	if s.DownPayment.IsNegative() {
		// over-borrowed data: clamp rather than report a negative down payment
		s.DownPayment = b.zero()
	}

	// Operating totals, with the same day-prorating as the ledger.
	periods := b.RentPeriods()
	expenses := b.Expenses()
	s.RentTotal, s.ChargesTotal, s.ExpensesTotal = b.zero(), b.zero(), b.zero()
	for m := range date.Months(p.PurchaseDate, on) {
		rent, charges := rentForMonth(periods, m, b.Currency())
		s.RentTotal = s.RentTotal.Add(rent)
		s.ChargesTotal = s.ChargesTotal.Add(charges)
		s.ExpensesTotal = s.ExpensesTotal.Add(expensesForMonth(expenses, m, b.Currency()))
	}

	// Loan totals and schedule state.
	s.LoanPaymentTotal, s.InsuranceTotal = b.zero(), b.zero()
	s.CapitalPaid, s.InterestPaid = b.zero(), b.zero()
	if hasLoan {
		n := loan.elapsed(on)
		sched := loan.BalanceAfter(n)

		payment := sched.Payment
		s.MonthlyPayment = &payment
		s.LoanPaymentTotal = sched.Payment.Mul(Q(n))
		s.InsuranceTotal = loan.MonthlyInsurance.Round().Mul(Q(n))
		s.CapitalPaid, s.InterestPaid = sched.CapitalPaid, sched.InterestPaid

		remaining := sched.Remaining
		s.Remaining = &remaining
	}

	// Cashflows. A negative real cashflow increases the cash invested.
	s.CashflowReal = s.RentTotal.Add(s.ChargesTotal).
		Sub(s.ExpensesTotal).Sub(s.LoanPaymentTotal).Sub(s.InsuranceTotal)
	s.CashflowEconomic = s.CashflowReal.Add(s.CapitalPaid)
	s.CashInvested = s.DownPayment.Sub(s.CashflowReal)

	// Sale economics need both a valuation and a loan balance.
	if v, ok := Estimate(b, on); ok {
		s.Valuation = &v
		if s.Remaining != nil {
			fees, net := saleOutcome(v.Value, *s.Remaining, p.SaleFeeRate)
			gain := net.Sub(s.CashInvested)
			s.SellingFees, s.NetProceeds, s.GainIfSold = &fees, &net, &gain
		}
	}
	return s
}

// MarshalJSON serializes the summary as a flat object of decimal strings.
// Unavailable figures are omitted entirely rather than rendered as zero.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("property", s.Name)
	w.Append("date", s.Date)
	w.Append("currency", s.Currency)

	w.Append("acquisitionCost", s.AcquisitionCost)
	w.Optional("borrowedCapital", s.Borrowed)
	w.Append("downPayment", s.DownPayment)

	w.Append("rentTotal", s.RentTotal)
	w.Append("chargesTotal", s.ChargesTotal)
	w.Append("expensesTotal", s.ExpensesTotal)

	w.Optional("monthlyPayment", s.MonthlyPayment)
	w.Append("loanPaymentsTotal", s.LoanPaymentTotal)
	w.Append("insuranceTotal", s.InsuranceTotal)
	w.Append("capitalPaid", s.CapitalPaid)
	w.Append("interestPaid", s.InterestPaid)
	w.Optional("remainingBalance", s.Remaining)

	w.Append("cashflowReal", s.CashflowReal)
	w.Append("cashflowEconomic", s.CashflowEconomic)
	w.Append("cashInvested", s.CashInvested)

	if s.Valuation != nil {
		w.Append("marketValue", s.Valuation.Value)
		if !s.Valuation.Manual {
			w.Append("marketPricePerArea", s.Valuation.PricePerArea)
			w.Append("marketPointDate", s.Valuation.PointDate)
		}
	}
	w.Append("saleFeeRate", s.SaleFeeRate)
	w.Optional("sellingFees", s.SellingFees)
	w.Optional("netProceeds", s.NetProceeds)
	w.Optional("gainIfSold", s.GainIfSold)
	return w.MarshalJSON()
}
