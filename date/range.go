package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// MonthOf returns the range covering d's whole month.
func MonthOf(d Date) Range { return Range{From: d.MonthStart(), To: d.MonthEnd()} }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}
