package immo

import (
	"iter"
	"log"
	"slices"
	"sort"

	"github.com/etnz/immo/date"
)

// Book is the read-only snapshot the engine computes from: one property, its
// optional loan, its rent periods, expenses and market price series.
//
// All engine functions take a *Book and an as-of date and are pure: the same
// book and date always produce the same figures, and nothing is cached. If
// the underlying records are mutated concurrently, the caller is responsible
// for handing the engine a consistent snapshot.
type Book struct {
	property Property
	loan     *Loan
	rents    []RentPeriod
	expenses []Expense
	points   date.History[Money] // price per m², one point per month
}

// NewBook creates a book for the given property.
func NewBook(p Property) *Book {
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	return &Book{property: p}
}

// Property returns the property scalar fields.
func (b *Book) Property() Property { return b.property }

// SetProperty replaces the property scalar fields.
func (b *Book) SetProperty(p Property) {
	if p.Currency == "" {
		p.Currency = b.property.Currency
	}
	b.property = p
}

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.property.Currency }

// SetLoan attaches the loan. A property carries at most one loan, so setting
// it twice replaces the previous one.
func (b *Book) SetLoan(l Loan) { b.loan = &l }

// Loan returns the loan and true, or false when the property is unencumbered.
func (b *Book) Loan() (Loan, bool) {
	if b.loan == nil {
		return Loan{}, false
	}
	return *b.loan, true
}

// AddRentPeriod records a tenancy. Periods are kept ordered by start date;
// the sort is stable so same-day periods keep their recording order.
func (b *Book) AddRentPeriod(r RentPeriod) {
	b.rents = append(b.rents, r)
	sort.SliceStable(b.rents, func(i, j int) bool {
		return b.rents[i].Start.Before(b.rents[j].Start)
	})
}

// RentPeriods returns the tenancies ordered by start date.
func (b *Book) RentPeriods() []RentPeriod { return slices.Clone(b.rents) }

// AddExpense records a one-off expense. Expenses are append-only.
func (b *Book) AddExpense(e Expense) {
	b.expenses = append(b.expenses, e)
	sort.SliceStable(b.expenses, func(i, j int) bool {
		return b.expenses[i].Date.Before(b.expenses[j].Date)
	})
}

// Expenses returns the recorded expenses ordered by date.
func (b *Book) Expenses() []Expense { return slices.Clone(b.expenses) }

// UpsertMarketPoint records the market price per m² for the month of 'on'.
// The series holds one value per month, so recording the same month again
// replaces the previous value and recording the same value is idempotent.
func (b *Book) UpsertMarketPoint(on date.Date, pricePerArea Money) {
	m := on.MonthStart()
	if old, ok := b.points.Get(m); ok && !old.Equal(pricePerArea) {
		log.Printf("%v: update price per m² from %s to %s", m, old, pricePerArea)
	}
	b.points.Append(m, pricePerArea)
}

// MarketPoints returns an iterator over the monthly price-per-m² series in
// chronological order.
func (b *Book) MarketPoints() iter.Seq2[date.Date, Money] { return b.points.Values() }

// LatestPoint returns the market point with the latest date on or before
// asOf. It returns false when the series has no point that early, which the
// valuation layer reports as "unknown", never as zero.
func (b *Book) LatestPoint(asOf date.Date) (on date.Date, pricePerArea Money, ok bool) {
	return b.points.ValueAsOf(asOf)
}

// zero returns a zero amount in the book's reporting currency.
func (b *Book) zero() Money { return M(0, b.property.Currency) }
