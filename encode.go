package immo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/immo/date"
	"github.com/shopspring/decimal"
)

// A book is persisted as a JSONL file: one record per line, identified by a
// "record" field. The file is human-readable and git-friendly, amounts are
// decimal strings, and re-encoding a decoded book yields a canonical form
// (property first, then loan, tenancies, expenses and market points).

// RecordType is a typed string identifying the kind of a book file line.
type RecordType string

const (
	RecProperty RecordType = "property"
	RecLoan     RecordType = "loan"
	RecRent     RecordType = "rent"
	RecExpense  RecordType = "expense"
	RecPoint    RecordType = "point"
)

// jproperty is the file representation of the property record.
type jproperty struct {
	Record          RecordType      `json:"record"`
	Name            string          `json:"name"`
	Currency        string          `json:"currency,omitempty"`
	PurchaseDate    date.Date       `json:"purchaseDate"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	NotaryFees      decimal.Decimal `json:"notaryFees"`
	AgencyFees      decimal.Decimal `json:"agencyFees"`
	Parking         decimal.Decimal `json:"parking"`
	SurfaceArea     Quantity        `json:"surfaceArea"`
	GoodwillPerArea decimal.Decimal `json:"goodwillPerArea"`
	SaleFeeRate     Percent         `json:"saleFeeRate"`
	MarketValue     decimal.Decimal `json:"marketValueOverride"`
}

type jloan struct {
	Record           RecordType      `json:"record"`
	Principal        decimal.Decimal `json:"principal"`
	AnnualRate       Percent         `json:"annualRate"`
	Years            int             `json:"years"`
	MonthlyInsurance decimal.Decimal `json:"monthlyInsurance"`
	Start            date.Date       `json:"start"`
}

type jrent struct {
	Record         RecordType      `json:"record"`
	Start          date.Date       `json:"start"`
	End            date.Date       `json:"end,omitzero"`
	MonthlyRent    decimal.Decimal `json:"monthlyRent"`
	MonthlyCharges decimal.Decimal `json:"monthlyCharges"`
}

type jexpense struct {
	Record   RecordType      `json:"record"`
	Date     date.Date       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

type jpoint struct {
	Record       RecordType      `json:"record"`
	Date         date.Date       `json:"date"`
	PricePerArea decimal.Decimal `json:"pricePerArea"`
}

// DecodeBook decodes a book from a stream of JSONL data. Records may appear
// in any order; the file must contain exactly one property record. Every
// record is validated, and a market point for an already-recorded month
// replaces the previous value.
func DecodeBook(r io.Reader) (*Book, error) {
	var prop *Property
	var loan *Loan
	var rents []jrent
	var expenses []jexpense
	var points []jpoint

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record on line %d %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Record {
		case RecProperty:
			if prop != nil {
				return nil, fmt.Errorf("line %d: book already has a property record", line)
			}
			var temp jproperty
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if temp.Currency == "" {
				temp.Currency = "EUR"
			}
			prop = &Property{
				Name:                temp.Name,
				Currency:            temp.Currency,
				PurchaseDate:        temp.PurchaseDate,
				PurchasePrice:       M(temp.PurchasePrice, temp.Currency),
				NotaryFees:          M(temp.NotaryFees, temp.Currency),
				AgencyFees:          M(temp.AgencyFees, temp.Currency),
				Parking:             M(temp.Parking, temp.Currency),
				SurfaceArea:         temp.SurfaceArea,
				GoodwillPerArea:     M(temp.GoodwillPerArea, temp.Currency),
				SaleFeeRate:         temp.SaleFeeRate,
				MarketValueOverride: M(temp.MarketValue, temp.Currency),
			}
			if err := prop.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: invalid property: %w", line, err)
			}
		case RecLoan:
			if loan != nil {
				return nil, fmt.Errorf("line %d: a property carries at most one loan", line)
			}
			var temp jloan
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			loan = &Loan{
				Principal:        M(temp.Principal, ""),
				AnnualRate:       temp.AnnualRate,
				Years:            temp.Years,
				MonthlyInsurance: M(temp.MonthlyInsurance, ""),
				Start:            temp.Start,
			}
		case RecRent:
			var temp jrent
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			rents = append(rents, temp)
		case RecExpense:
			var temp jexpense
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			expenses = append(expenses, temp)
		case RecPoint:
			var temp jpoint
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			points = append(points, temp)
		default:
			return nil, fmt.Errorf("line %d: unsupported record type %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read book: %w", err)
	}
	if prop == nil {
		return nil, fmt.Errorf("book has no property record")
	}

	book := NewBook(*prop)
	cur := book.Currency()

	if loan != nil {
		l := Loan{
			Principal:        M(loan.Principal.value, cur),
			AnnualRate:       loan.AnnualRate,
			Years:            loan.Years,
			MonthlyInsurance: M(loan.MonthlyInsurance.value, cur),
			Start:            loan.Start,
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("invalid loan: %w", err)
		}
		book.SetLoan(l)
	}
	for _, jr := range rents {
		r := RentPeriod{
			Start:          jr.Start,
			End:            jr.End,
			MonthlyRent:    M(jr.MonthlyRent, cur),
			MonthlyCharges: M(jr.MonthlyCharges, cur),
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rent period starting %s: %w", r.Start, err)
		}
		book.AddRentPeriod(r)
	}
	for _, je := range expenses {
		e := Expense{
			Date:     je.Date,
			Amount:   M(je.Amount, cur),
			Category: ExpenseCategory(je.Category),
			Note:     je.Note,
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid expense on %s: %w", e.Date, err)
		}
		book.AddExpense(e)
	}
	for _, jp := range points {
		book.UpsertMarketPoint(jp.Date, M(jp.PricePerArea, cur))
	}
	return book, nil
}

// EncodeBook writes the book in its canonical JSONL form: the property
// record first, then the loan, the tenancies, the expenses and the market
// points in chronological order.
func EncodeBook(w io.Writer, b *Book) error {
	if err := EncodeProperty(w, b.Property()); err != nil {
		return err
	}
	if loan, ok := b.Loan(); ok {
		if err := EncodeLoan(w, loan); err != nil {
			return err
		}
	}
	for _, r := range b.RentPeriods() {
		if err := EncodeRentPeriod(w, r); err != nil {
			return err
		}
	}
	for _, e := range b.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	for on, price := range b.MarketPoints() {
		if err := EncodeMarketPoint(w, on, price); err != nil {
			return err
		}
	}
	return nil
}

// encodeLine writes one record as a single JSON line.
func encodeLine(w io.Writer, rec json.Marshaler) error {
	bytes, err := rec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode record: %w", err)
	}
	if _, err := w.Write(append(bytes, '\n')); err != nil {
		return fmt.Errorf("could not write record: %w", err)
	}
	return nil
}

// EncodeProperty writes the property record as one JSON line.
func EncodeProperty(w io.Writer, p Property) error {
	var jw jsonObjectWriter
	jw.Append("record", RecProperty)
	jw.Append("name", p.Name)
	jw.Optional("currency", p.Currency)
	jw.Append("purchaseDate", p.PurchaseDate)
	jw.Append("purchasePrice", p.PurchasePrice)
	jw.Append("notaryFees", p.NotaryFees)
	jw.Append("agencyFees", p.AgencyFees)
	jw.Append("parking", p.Parking)
	jw.Append("surfaceArea", p.SurfaceArea)
	jw.Append("goodwillPerArea", p.GoodwillPerArea)
	jw.Append("saleFeeRate", p.SaleFeeRate)
	if !p.MarketValueOverride.IsZero() {
		jw.Append("marketValueOverride", p.MarketValueOverride)
	}
	return encodeLine(w, &jw)
}

// EncodeLoan writes the loan record as one JSON line.
func EncodeLoan(w io.Writer, l Loan) error {
	var jw jsonObjectWriter
	jw.Append("record", RecLoan)
	jw.Append("principal", l.Principal)
	jw.Append("annualRate", l.AnnualRate)
	jw.Append("years", l.Years)
	jw.Append("monthlyInsurance", l.MonthlyInsurance)
	jw.Append("start", l.Start)
	return encodeLine(w, &jw)
}

// EncodeRentPeriod writes a tenancy record as one JSON line.
func EncodeRentPeriod(w io.Writer, r RentPeriod) error {
	var jw jsonObjectWriter
	jw.Append("record", RecRent)
	jw.Append("start", r.Start)
	if !r.Ongoing() {
		jw.Append("end", r.End)
	}
	jw.Append("monthlyRent", r.MonthlyRent)
	jw.Append("monthlyCharges", r.MonthlyCharges)
	return encodeLine(w, &jw)
}

// EncodeExpense writes an expense record as one JSON line.
func EncodeExpense(w io.Writer, e Expense) error {
	var jw jsonObjectWriter
	jw.Append("record", RecExpense)
	jw.Append("date", e.Date)
	jw.Append("amount", e.Amount)
	jw.Append("category", e.Category)
	jw.Optional("note", e.Note)
	return encodeLine(w, &jw)
}

// EncodeMarketPoint writes a market point record as one JSON line.
func EncodeMarketPoint(w io.Writer, on date.Date, pricePerArea Money) error {
	var jw jsonObjectWriter
	jw.Append("record", RecPoint)
	jw.Append("date", on.MonthStart())
	jw.Append("pricePerArea", pricePerArea)
	return encodeLine(w, &jw)
}
