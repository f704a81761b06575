package immo

import "github.com/etnz/immo/date"

// LedgerRow is one calendar month of operating cashflow for the property.
type LedgerRow struct {
	Month       date.Date
	Rent        Money // prorated rent excluding charges
	Charges     Money // prorated recoverable charges
	Expenses    Money
	LoanPayment Money
	Insurance   Money
	Net         Money // rent + charges - expenses - payment - insurance
	Cumulative  Money // running sum of Net since the first row
}

// BuildLedger produces one row per calendar month from the purchase date to
// 'end' inclusive. Rent and charges are prorated by covered days, expenses
// are bucketed in their month, and the loan contributes its flat annuity
// payment and insurance on every month inside the loan term.
//
// Each monetary sub-result is rounded to the cent before summation, the same
// discipline as the amortization table.
func BuildLedger(b *Book, end date.Date) []LedgerRow {
	periods := b.RentPeriods()
	expenses := b.Expenses()
	loan, hasLoan := b.Loan()

	var payment, insurance Money
	if hasLoan {
		payment = loan.Payment()
		insurance = loan.MonthlyInsurance.Round()
	}

	var rows []LedgerRow
	cum := b.zero()

	for m := range date.Months(b.Property().PurchaseDate, end) {
		rent, charges := rentForMonth(periods, m, b.Currency())
		exp := expensesForMonth(expenses, m, b.Currency())

		pay, ins := b.zero(), b.zero()
		if hasLoan {
			// the loan pays on month indexes 0..n-1 from its start month
			if idx := date.MonthsBetween(loan.Start, m); idx >= 0 && idx < loan.months() {
				pay, ins = payment, insurance
			}
		}

		net := rent.Add(charges).Sub(exp).Sub(pay).Sub(ins)
		cum = cum.Add(net)

		rows = append(rows, LedgerRow{
			Month:       m,
			Rent:        rent,
			Charges:     charges,
			Expenses:    exp,
			LoanPayment: pay,
			Insurance:   ins,
			Net:         net,
			Cumulative:  cum,
		})
	}
	return rows
}

// rentForMonth sums the prorated rent and charges of every tenancy
// overlapping the month of m. A period covering the whole month contributes
// its full monthly amount; a partial overlap is scaled by covered days over
// days in the month. Overlapping tenancies both contribute.
func rentForMonth(periods []RentPeriod, m date.Date, currency string) (rent, charges Money) {
	rent, charges = M(0, currency), M(0, currency)
	month := date.MonthOf(m)
	dim := Q(m.DaysInMonth())

	for _, p := range periods {
		end := p.End
		if p.Ongoing() {
			end = month.To
		}
		covered := date.OverlapDays(p.Start, end, month.From, month.To)
		if covered == 0 {
			continue
		}
		ratio := Q(covered).Div(dim)
		rent = rent.Add(p.MonthlyRent.Mul(ratio).Round())
		charges = charges.Add(p.MonthlyCharges.Mul(ratio).Round())
	}
	return rent, charges
}

// expensesForMonth sums the expenses dated within the month of m.
func expensesForMonth(expenses []Expense, m date.Date, currency string) Money {
	total := M(0, currency)
	month := date.MonthOf(m)
	for _, e := range expenses {
		if month.Contains(e.Date) {
			total = total.Add(e.Amount.Round())
		}
	}
	return total
}
