package date

import (
	"iter"
	"time"
)

// This file holds the month-level calendar arithmetic used by the cashflow
// engine: month normalization, calendar-safe month addition, month iteration
// and day-count interval intersection.

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date { return New(d.y, d.m, 1) }

// MonthEnd returns the last day of d's month.
func (d Date) MonthEnd() Date { return New(d.y, d.m, d.DaysInMonth()) }

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	// day 0 of the next month is the last day of this month.
	return time.Date(d.y, d.m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths returns the date n whole months later (or earlier for negative n).
// The day of month is clamped to the last valid day of the resulting month,
// so Jan 31 + 1 month is Feb 28 (or 29).
func (d Date) AddMonths(n int) Date {
	months := d.y*12 + int(d.m) - 1 + n
	y, m := months/12, time.Month(months%12+1)
	day := d.d
	if last := New(y, m, 1).DaysInMonth(); day > last {
		day = last
	}
	return New(y, m, day)
}

// AddYears returns the date n years later, clamping Feb 29 to Feb 28 on
// non-leap target years.
func (d Date) AddYears(n int) Date { return d.AddMonths(12 * n) }

// MonthsBetween returns the number of calendar-month steps from start's month
// to end's month. It is negative when end's month precedes start's month.
func MonthsBetween(start, end Date) int {
	s, e := start.MonthStart(), end.MonthStart()
	return (e.y-s.y)*12 + int(e.m) - int(s.m)
}

// Months returns an iterator over the month-start dates from start's month to
// end's month inclusive. The sequence is empty when start's month is after
// end's month, and can be ranged over multiple times.
func Months(start, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		last := end.MonthStart()
		for cur := start.MonthStart(); !cur.After(last); cur = cur.AddMonths(1) {
			if !yield(cur) {
				return
			}
		}
	}
}

// OverlapDays returns the inclusive day-count intersection of the two closed
// intervals [aFrom, aTo] and [bFrom, bTo]. It returns 0 when the intervals
// are disjoint or inverted.
func OverlapDays(aFrom, aTo, bFrom, bTo Date) int {
	s := aFrom
	if bFrom.After(s) {
		s = bFrom
	}
	e := aTo
	if bTo.Before(e) {
		e = bTo
	}
	if e.Before(s) {
		return 0
	}
	return e.Sub(s) + 1
}
