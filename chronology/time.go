package chronology

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	lerr "github.com/laskin-lang/laskin/errors"
)

// Time is a wall-clock time of day, with no associated date.
type Time struct {
	Hour   int
	Minute int
	Second int
}

var timePattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)

// IsTime reports whether text has the HH:MM:SS shape.
func IsTime(text string) bool {
	return timePattern.MatchString(text)
}

// ParseTime parses an HH:MM:SS wall-clock time.
func ParseTime(text string) (Time, error) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return Time{}, lerr.New(lerr.Syntax, "invalid time literal %q", text)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	t := Time{Hour: hour, Minute: minute, Second: second}
	if !t.IsValid() {
		return Time{}, lerr.New(lerr.Range, "time literal %q is out of range", text)
	}
	return t, nil
}

// IsValid reports whether t names an actual wall-clock time.
func (t Time) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

func (t Time) secondsOfDay() int64 {
	return int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
}

// AddSeconds returns t shifted by n seconds, wrapping within a single day
// since Time carries no date component.
func (t Time) AddSeconds(n int64) Time {
	const daySeconds = 86400
	total := (t.secondsOfDay() + n) % daySeconds
	if total < 0 {
		total += daySeconds
	}
	return Time{
		Hour:   int(total / 3600),
		Minute: int((total % 3600) / 60),
		Second: int(total % 60),
	}
}

// Sub reports the number of seconds between t and other (t - other),
// within the bounds of a single day.
func (t Time) Sub(other Time) int64 {
	return t.secondsOfDay() - other.secondsOfDay()
}

// Format renders t in HH:MM:SS form.
func (t Time) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t Time) String() string { return t.Format() }

// Now returns the wall-clock time portion of now.
func Now(now time.Time) Time {
	return Time{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}
}
