package immo

import (
	"errors"
	"fmt"

	"github.com/etnz/immo/date"
)

// Property holds the scalar facts about one real-estate investment. All other
// records (loan, rent periods, expenses, market points) hang off a Book.
type Property struct {
	Name         string
	Currency     string // reporting currency, defaults to EUR
	PurchaseDate date.Date

	PurchasePrice Money
	NotaryFees    Money
	AgencyFees    Money
	Parking       Money

	SurfaceArea Quantity // in m²; zero when unknown

	// GoodwillPerArea is a manual per-m² adjustment layered onto the observed
	// market price to reflect quality or condition the raw series misses.
	GoodwillPerArea Money

	// SaleFeeRate is the agency fee charged on a sale, in percent of the price.
	SaleFeeRate Percent

	// MarketValueOverride short-circuits the market-price estimate when set.
	// Zero means no override.
	MarketValueOverride Money
}

// AcquisitionCost is the total cash price of entry: purchase price, notary
// fees, agency fees and parking.
func (p Property) AcquisitionCost() Money {
	return p.PurchasePrice.Add(p.NotaryFees).Add(p.AgencyFees).Add(p.Parking)
}

// Validate checks the property scalar fields.
func (p Property) Validate() error {
	var errs error
	if p.Name == "" {
		errs = errors.Join(errs, fmt.Errorf("property name is required"))
	}
	if p.PurchaseDate.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("purchase date is required"))
	}
	if p.PurchasePrice.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("purchase price cannot be negative"))
	}
	if p.SurfaceArea.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("surface area cannot be negative"))
	}
	return errs
}

// Loan is the single mortgage attached to a property.
type Loan struct {
	Principal        Money // borrowed capital, after down payment
	AnnualRate       Percent
	Years            int
	MonthlyInsurance Money
	Start            date.Date
}

// Validate checks the loan contract invariants. The amortization math assumes
// them and does not re-check.
func (l Loan) Validate() error {
	var errs error
	if !l.Principal.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("loan principal must be positive, got %s", l.Principal))
	}
	if l.Years < 1 {
		errs = errors.Join(errs, fmt.Errorf("loan term must be at least 1 year, got %d", l.Years))
	}
	if l.Start.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("loan start date is required"))
	}
	return errs
}

// ExpenseCategory classifies a one-off expense.
type ExpenseCategory string

const (
	Works     ExpenseCategory = "works"
	Repair    ExpenseCategory = "repair"
	Tax       ExpenseCategory = "tax"
	Charges   ExpenseCategory = "charges"
	Insurance ExpenseCategory = "insurance"
	Other     ExpenseCategory = "other"
)

// ParseExpenseCategory parses a string into an ExpenseCategory.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch c := ExpenseCategory(s); c {
	case Works, Repair, Tax, Charges, Insurance, Other:
		return c, nil
	default:
		return "", fmt.Errorf("unknown expense category: %q", s)
	}
}

// Expense is a one-off cost recorded against the property. Expenses are
// append-only ledger entries.
type Expense struct {
	Date     date.Date
	Amount   Money // always positive
	Category ExpenseCategory
	Note     string
}

// Validate checks the expense fields.
func (e Expense) Validate() error {
	var errs error
	if e.Date.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("expense date is required"))
	}
	if !e.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("expense amount must be positive, got %s", e.Amount))
	}
	if _, err := ParseExpenseCategory(string(e.Category)); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// RentPeriod is a tenancy: a monthly rent and charges amount over a date
// interval. A zero End means the tenancy is ongoing. Periods may overlap
// (a co-tenancy transition for instance); overlapping contributions sum.
type RentPeriod struct {
	Start          date.Date
	End            date.Date // zero = ongoing
	MonthlyRent    Money     // excluding charges
	MonthlyCharges Money
}

// Ongoing reports whether the tenancy has no end date.
func (r RentPeriod) Ongoing() bool { return r.End.IsZero() }

// Validate checks the rent period fields.
func (r RentPeriod) Validate() error {
	var errs error
	if r.Start.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("rent period start date is required"))
	}
	if !r.Ongoing() && r.End.Before(r.Start) {
		errs = errors.Join(errs, fmt.Errorf("rent period ends %s before it starts %s", r.End, r.Start))
	}
	if r.MonthlyRent.IsNegative() || r.MonthlyCharges.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("rent and charges cannot be negative"))
	}
	return errs
}
