package engine

import (
	"github.com/laskin-lang/laskin/chronology"
	"github.com/laskin-lang/laskin/value"
)

// registerMonthsAndWeekdays installs the named month/weekday constants
// and the month:/weekday: word family.
func registerMonthsAndWeekdays(c *Context) {
	months := []struct {
		name string
		m    chronology.Month
	}{
		{"january", chronology.January}, {"february", chronology.February},
		{"march", chronology.March}, {"april", chronology.April},
		{"may", chronology.May}, {"june", chronology.June},
		{"july", chronology.July}, {"august", chronology.August},
		{"september", chronology.September}, {"october", chronology.October},
		{"november", chronology.November}, {"december", chronology.December},
	}
	for _, entry := range months {
		m := entry.m
		c.Define(entry.name, value.NewMonth(m))
	}

	weekdays := []struct {
		name string
		w    chronology.Weekday
	}{
		{"sunday", chronology.Sunday}, {"monday", chronology.Monday},
		{"tuesday", chronology.Tuesday}, {"wednesday", chronology.Wednesday},
		{"thursday", chronology.Thursday}, {"friday", chronology.Friday},
		{"saturday", chronology.Saturday},
	}
	for _, entry := range weekdays {
		w := entry.w
		c.Define(entry.name, value.NewWeekday(w))
	}

	c.def("month:>number", func(e value.Engine) error {
		m, err := popMonth(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(m))))
		return nil
	})
	c.def("weekday:weekend?", func(e value.Engine) error {
		w, err := popWeekday(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(w.IsWeekend()))
		return nil
	})
	c.def("weekday:>number", func(e value.Engine) error {
		w, err := popWeekday(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(w))))
		return nil
	})
}
