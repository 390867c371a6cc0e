package chronology

import (
	"strings"

	lerr "github.com/laskin-lang/laskin/errors"
)

// Weekday is a day of the week, Sunday == 0 through Saturday == 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "invalid-weekday"
	}
	return weekdayNames[w]
}

// IsValid reports whether w is one of the seven weekdays.
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// IsWeekend reports whether w is Saturday or Sunday.
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// Add shifts w by n days, wrapping cyclically.
func (w Weekday) Add(n int) Weekday {
	idx := (int(w) + n) % 7
	if idx < 0 {
		idx += 7
	}
	return Weekday(idx)
}

// ParseWeekday recognizes an English weekday name, case-insensitively.
func ParseWeekday(text string) (Weekday, error) {
	w, ok := WeekdayFromName(text)
	if !ok {
		return 0, lerr.New(lerr.Syntax, "invalid day of week %q", text)
	}
	return w, nil
}

// WeekdayFromName is the non-raising counterpart used by is-weekday.
func WeekdayFromName(text string) (Weekday, bool) {
	lower := strings.ToLower(text)
	for i, name := range weekdayNames {
		if name == lower {
			return Weekday(i), true
		}
	}
	return 0, false
}

// IsWeekdayName reports whether text names a day of the week.
func IsWeekdayName(text string) bool {
	_, ok := WeekdayFromName(text)
	return ok
}
