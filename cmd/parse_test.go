package cmd

import (
	"testing"

	"github.com/etnz/immo"
	"github.com/shopspring/decimal"
)

func TestParseGrowth(t *testing.T) {
	testCases := []struct {
		in      string
		want    string // expected fraction
		wantErr bool
	}{
		{in: "2", want: "0.02"},
		{in: "-1.5", want: "-0.015"},
		{in: "0", want: "0"},
		{in: "2%", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := parseGrowth(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseGrowth(%q) = %s, want an error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGrowth(%q): %v", tc.in, err)
			continue
		}
		if want, _ := decimal.NewFromString(tc.want); !got.Equal(want) {
			t.Errorf("parseGrowth(%q) = %s, want %s", tc.in, got, want)
		}
	}
}

func TestParseMultipliers(t *testing.T) {
	got, err := parseMultipliers("0.9, 1, 1.1")
	if err != nil {
		t.Fatal(err)
	}
	want := []immo.Quantity{immo.Q(0.9), immo.Q(1), immo.Q(1.1)}
	if len(got) != len(want) {
		t.Fatalf("got %d multipliers, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("multiplier %d = %s, want %s", i, got[i], want[i])
		}
	}

	// Empty selects the engine default.
	if got, err := parseMultipliers(""); err != nil || got != nil {
		t.Errorf("parseMultipliers(\"\") = %v, %v, want nil, nil", got, err)
	}

	for _, in := range []string{"0.9,,1.1", "-1", "0", "x"} {
		if _, err := parseMultipliers(in); err == nil {
			t.Errorf("parseMultipliers(%q) succeeded, want an error", in)
		}
	}
}

func TestParseYears(t *testing.T) {
	got, err := parseYears("1, 2, 10")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("year %d = %d, want %d", i, got[i], want[i])
		}
	}

	for _, in := range []string{"0", "-1", "two", "1.5"} {
		if _, err := parseYears(in); err == nil {
			t.Errorf("parseYears(%q) succeeded, want an error", in)
		}
	}
}
