package chronology

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	lerr "github.com/laskin-lang/laskin/errors"
)

// Date is a Gregorian calendar date.
type Date struct {
	Year  int
	Month Month
	Day   int
}

var datePattern = regexp.MustCompile(`^(\d+)-(\d+)-(\d+)$`)

// IsDate reports whether text has the shape of a date literal — three
// dash-separated digit groups — without validating the calendar fields.
func IsDate(text string) bool {
	return datePattern.MatchString(text)
}

// ParseDate parses an ISO 8601 YYYY-MM-DD date, validating month range and
// calendar validity (leap years included).
func ParseDate(text string) (Date, error) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return Date{}, lerr.New(lerr.Syntax, "invalid date literal %q", text)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return Date{}, lerr.New(lerr.Range, "month %d is out of range", month)
	}
	d := Date{Year: year, Month: Month(month), Day: day}
	if !d.IsValid() {
		return Date{}, lerr.New(lerr.Range, "date literal %q is out of range", text)
	}
	return d, nil
}

// IsValid reports whether d names an actual Gregorian calendar date.
func (d Date) IsValid() bool {
	if d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && t.Month() == time.Month(d.Month) && t.Day() == d.Day
}

func (d Date) asTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday reports the day of the week d falls on. 1970-01-01 is a
// Thursday, which anchors the whole Gregorian cycle.
func (d Date) Weekday() Weekday {
	return Weekday(d.asTime().Weekday())
}

// DayOfYear reports d's 1-based ordinal day within its year.
func (d Date) DayOfYear() int {
	return d.asTime().YearDay()
}

// IsLeapYear reports whether d's year is a Gregorian leap year.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.Year)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth reports the number of days in d's month and year.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.Year, d.Month)
}

// DaysInMonth reports the number of days in the given month of year.
func DaysInMonth(year int, month Month) int {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// DaysInYear reports 366 for leap years, 365 otherwise.
func (d Date) DaysInYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int64) Date {
	t := d.asTime().AddDate(0, 0, int(n))
	return Date{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// Sub reports the number of days between d and other (d - other).
func (d Date) Sub(other Date) int64 {
	const day = 24 * time.Hour
	return int64(d.asTime().Sub(other.asTime()) / day)
}

// Format renders d in ISO 8601 form, e.g. "2020-02-29".
func (d Date) Format() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string { return d.Format() }

// Today returns the calendar date of now, taken in now's own location.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: Month(now.Month()), Day: now.Day()}
}
