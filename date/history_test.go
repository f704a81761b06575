package date

import "testing"

func TestHistoryAppendIsIdempotent(t *testing.T) {
	h := &History[string]{}
	h.Append(MustParse("2023-01-01"), "a")
	h.Append(MustParse("2023-02-01"), "b")
	h.Append(MustParse("2023-01-01"), "a") // same point again

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if v, ok := h.Get(MustParse("2023-01-01")); !ok || v != "a" {
		t.Errorf("Get() = %q, %v, want \"a\", true", v, ok)
	}

	// Appending a different value on an existing date replaces it.
	h.Append(MustParse("2023-01-01"), "c")
	if v, _ := h.Get(MustParse("2023-01-01")); v != "c" {
		t.Errorf("Get() after replace = %q, want \"c\"", v)
	}
	if h.Len() != 2 {
		t.Errorf("Len() after replace = %d, want 2", h.Len())
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := &History[int]{}
	// Appended out of order on purpose.
	h.Append(MustParse("2023-03-01"), 3)
	h.Append(MustParse("2023-01-01"), 1)
	h.Append(MustParse("2023-02-01"), 2)

	testCases := []struct {
		day      string
		want     int
		wantDay  string
		wantOK   bool
	}{
		{day: "2023-01-01", want: 1, wantDay: "2023-01-01", wantOK: true},
		{day: "2023-01-15", want: 1, wantDay: "2023-01-01", wantOK: true},
		{day: "2023-02-28", want: 2, wantDay: "2023-02-01", wantOK: true},
		{day: "2024-01-01", want: 3, wantDay: "2023-03-01", wantOK: true},
		{day: "2022-12-31", wantOK: false},
	}

	for _, tc := range testCases {
		day, v, ok := h.ValueAsOf(MustParse(tc.day))
		if ok != tc.wantOK {
			t.Errorf("ValueAsOf(%s) ok = %v, want %v", tc.day, ok, tc.wantOK)
			continue
		}
		if ok && (v != tc.want || day != MustParse(tc.wantDay)) {
			t.Errorf("ValueAsOf(%s) = %v on %v, want %v on %v", tc.day, v, day, tc.want, tc.wantDay)
		}
	}
}

func TestHistoryLatest(t *testing.T) {
	h := &History[int]{}
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history = %v, want zero date", day)
	}
	h.Append(MustParse("2023-02-01"), 2)
	h.Append(MustParse("2023-01-01"), 1)
	day, v := h.Latest()
	if day != MustParse("2023-02-01") || v != 2 {
		t.Errorf("Latest() = %v, %d, want 2023-02-01, 2", day, v)
	}
}
