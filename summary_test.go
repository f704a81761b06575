package immo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/immo/date"
)

func TestNewSummary(t *testing.T) {
	b := testBook()
	s := NewSummary(b, date.MustParse("2023-03-31"))

	if want := M(220000, "EUR"); !s.AcquisitionCost.Equal(want) {
		t.Errorf("AcquisitionCost = %s, want %s", s.AcquisitionCost, want)
	}
	if s.Borrowed == nil || !s.Borrowed.Equal(M(200000, "EUR")) {
		t.Errorf("Borrowed = %v, want 200000", s.Borrowed)
	}
	if want := M(20000, "EUR"); !s.DownPayment.Equal(want) {
		t.Errorf("DownPayment = %s, want %s", s.DownPayment, want)
	}

	// Rent accrues from mid January: 548.39 + 1000 + 1000.
	if want := M(2548.39, "EUR"); !s.RentTotal.Equal(want) {
		t.Errorf("RentTotal = %s, want %s", s.RentTotal, want)
	}
	if want := M(2293.55, "EUR"); !s.ChargesTotal.Equal(want) {
		t.Errorf("ChargesTotal = %s, want %s", s.ChargesTotal, want)
	}
	if !s.ExpensesTotal.IsZero() {
		t.Errorf("ExpensesTotal = %s, want 0", s.ExpensesTotal)
	}

	// Seven installments from August 2022 to March 2023.
	if s.MonthlyPayment == nil || !s.MonthlyPayment.Equal(M(1011.77, "EUR")) {
		t.Errorf("MonthlyPayment = %v, want 1011.77", s.MonthlyPayment)
	}
	if want := M(7082.39, "EUR"); !s.LoanPaymentTotal.Equal(want) {
		t.Errorf("LoanPaymentTotal = %s, want %s", s.LoanPaymentTotal, want)
	}
	if want := M(210, "EUR"); !s.InsuranceTotal.Equal(want) {
		t.Errorf("InsuranceTotal = %s, want %s", s.InsuranceTotal, want)
	}
	if got := s.CapitalPaid.Add(s.InterestPaid); !got.Equal(s.LoanPaymentTotal) {
		t.Errorf("CapitalPaid+InterestPaid = %s, want %s", got, s.LoanPaymentTotal)
	}
	loan, _ := b.Loan()
	if s.Remaining == nil || !s.Remaining.Equal(loan.BalanceAfter(7).Remaining) {
		t.Errorf("Remaining = %v, want the balance after 7 installments", s.Remaining)
	}

	// Cashflow identities.
	wantReal := s.RentTotal.Add(s.ChargesTotal).Sub(s.ExpensesTotal).
		Sub(s.LoanPaymentTotal).Sub(s.InsuranceTotal)
	if !s.CashflowReal.Equal(wantReal) {
		t.Errorf("CashflowReal = %s, want %s", s.CashflowReal, wantReal)
	}
	if want := M(-2450.45, "EUR"); !s.CashflowReal.Equal(want) {
		t.Errorf("CashflowReal = %s, want %s", s.CashflowReal, want)
	}
	if !s.CashflowEconomic.Equal(s.CashflowReal.Add(s.CapitalPaid)) {
		t.Errorf("CashflowEconomic = %s, want real cashflow plus capital paid", s.CashflowEconomic)
	}
	// Negative cashflow adds to the cash invested.
	if want := M(22450.45, "EUR"); !s.CashInvested.Equal(want) {
		t.Errorf("CashInvested = %s, want %s", s.CashInvested, want)
	}

	// Market point of December 2022: (7320+250)*31.5 + 15000.
	if s.Valuation == nil {
		t.Fatal("Valuation is nil, want a market estimate")
	}
	if want := M(253455, "EUR"); !s.Valuation.Value.Equal(want) {
		t.Errorf("Valuation.Value = %s, want %s", s.Valuation.Value, want)
	}
	if s.SellingFees == nil || !s.SellingFees.Equal(M(10138.20, "EUR")) {
		t.Errorf("SellingFees = %v, want 10138.20", s.SellingFees)
	}
	if s.NetProceeds == nil || s.GainIfSold == nil {
		t.Fatal("NetProceeds/GainIfSold are nil, want sale economics")
	}
	wantNet := s.Valuation.Value.Sub(*s.SellingFees).Sub(*s.Remaining)
	if !s.NetProceeds.Equal(wantNet) {
		t.Errorf("NetProceeds = %s, want %s", s.NetProceeds, wantNet)
	}
	if want := wantNet.Sub(s.CashInvested); !s.GainIfSold.Equal(want) {
		t.Errorf("GainIfSold = %s, want %s", s.GainIfSold, want)
	}
}

func TestNewSummary_NoLoanNoMarket(t *testing.T) {
	b := cashBook()
	s := NewSummary(b, date.MustParse("2024-03-31"))

	// Without a loan the whole acquisition is paid down.
	if s.Borrowed != nil || s.MonthlyPayment != nil || s.Remaining != nil {
		t.Errorf("loan figures = %v/%v/%v, want all absent", s.Borrowed, s.MonthlyPayment, s.Remaining)
	}
	if want := M(32500, "EUR"); !s.DownPayment.Equal(want) {
		t.Errorf("DownPayment = %s, want %s", s.DownPayment, want)
	}
	if s.Valuation != nil || s.SellingFees != nil || s.NetProceeds != nil || s.GainIfSold != nil {
		t.Error("sale economics present, want absent without a valuation")
	}
	// Cash invested is still well defined.
	if want := M(32500, "EUR"); !s.CashInvested.Equal(want) {
		t.Errorf("CashInvested = %s, want %s", s.CashInvested, want)
	}
}

func TestNewSummary_BeforeLoanStart(t *testing.T) {
	b := testBook()
	s := NewSummary(b, date.MustParse("2022-08-01"))

	// On the purchase month no installment is due yet.
	if !s.LoanPaymentTotal.IsZero() || !s.CapitalPaid.IsZero() {
		t.Errorf("loan totals = %s/%s, want 0 before the first installment", s.LoanPaymentTotal, s.CapitalPaid)
	}
	if s.Remaining == nil || !s.Remaining.Equal(M(200000, "EUR")) {
		t.Errorf("Remaining = %v, want the full principal", s.Remaining)
	}
}

func TestSummary_MarshalJSON(t *testing.T) {
	b := testBook()
	s := NewSummary(b, date.MustParse("2023-03-31"))

	buf, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := string(buf)

	for _, want := range []string{
		`"property":"studio-15e"`,
		`"date":"2023-03-31"`,
		`"borrowedCapital":"200000"`,
		`"rentTotal":"2548.39"`,
		`"marketValue":"253455"`,
		`"marketPointDate":"2022-12-01"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary JSON misses %s in %s", want, got)
		}
	}
}

func TestSummary_MarshalJSONOmitsUnknown(t *testing.T) {
	s := NewSummary(cashBook(), date.MustParse("2024-03-31"))

	buf, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := string(buf)

	// Absent figures are omitted, not rendered as zero.
	for _, field := range []string{"borrowedCapital", "monthlyPayment", "remainingBalance", "marketValue", "gainIfSold"} {
		if strings.Contains(got, field) {
			t.Errorf("summary JSON contains %q, want it omitted: %s", field, got)
		}
	}
}
