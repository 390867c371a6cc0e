// Package chronology implements Laskin's calendar and wall-clock types:
// Date, Time, Month and Weekday, their parsing/validation rules, and
// day/second offset arithmetic. Calendar math (leap years,
// weekday-of-date, day-of-year) is delegated to the standard library's
// time package, whose normalization is the correct Gregorian
// implementation this package would otherwise have to reimplement by
// hand.
package chronology

import (
	"strings"

	lerr "github.com/laskin-lang/laskin/errors"
)

// Month is a calendar month, January == 1 through December == 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"", "january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// String renders the month's lower-case English name.
func (m Month) String() string {
	if m < January || m > December {
		return "invalid-month"
	}
	return monthNames[m]
}

// IsValid reports whether m is one of the twelve calendar months.
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// Add shifts m by n months, wrapping cyclically in both directions.
func (m Month) Add(n int) Month {
	idx := int(m-1) + n
	idx %= 12
	if idx < 0 {
		idx += 12
	}
	return Month(idx + 1)
}

// ParseMonth recognizes an English month name, case-insensitively.
func ParseMonth(text string) (Month, error) {
	m, ok := MonthFromName(text)
	if !ok {
		return 0, lerr.New(lerr.Syntax, "invalid month name %q", text)
	}
	return m, nil
}

// MonthFromName is the non-raising counterpart used by is-month.
func MonthFromName(text string) (Month, bool) {
	lower := strings.ToLower(text)
	for i, name := range monthNames {
		if i == 0 {
			continue
		}
		if name == lower {
			return Month(i), true
		}
	}
	return 0, false
}

// IsMonthName reports whether text names a month.
func IsMonthName(text string) bool {
	_, ok := MonthFromName(text)
	return ok
}
