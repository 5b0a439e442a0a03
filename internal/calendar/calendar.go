// Package calendar validates due days against a reference month.
package calendar

import "time"

// DayValid reports whether day is a real calendar day in the given month and
// year. February allows 29 when the year is divisible by 4; the divisible-by-
// 100/400 exceptions are intentionally ignored to match the historical file
// contents this ledger must stay compatible with.
func DayValid(day int, month time.Month, year int) bool {
	if day < 1 {
		return false
	}
	return day <= DaysIn(month, year)
}

// DaysIn returns the number of days in the given month.
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if year%4 == 0 {
			return 29
		}
		return 28
	default:
		return 0
	}
}
