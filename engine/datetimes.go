package engine

import (
	"time"

	"github.com/laskin-lang/laskin/chronology"
	"github.com/laskin-lang/laskin/value"
)

// epoch is the date:>number reference point: days since 1970-01-01,
// matching the epoch chronology's weekday computation is anchored to.
var epoch = chronology.Date{Year: 1970, Month: chronology.January, Day: 1}

// registerDatesAndTimes installs today/tomorrow/yesterday/now and the
// date:/time: word families.
func registerDatesAndTimes(c *Context) {
	c.def("today", func(e value.Engine) error {
		e.Push(value.NewDate(chronology.Today(time.Now())))
		return nil
	})
	c.def("tomorrow", func(e value.Engine) error {
		e.Push(value.NewDate(chronology.Today(time.Now()).AddDays(1)))
		return nil
	})
	c.def("yesterday", func(e value.Engine) error {
		e.Push(value.NewDate(chronology.Today(time.Now()).AddDays(-1)))
		return nil
	})
	c.def("now", func(e value.Engine) error {
		e.Push(value.NewTime(chronology.Now(time.Now())))
		return nil
	})

	c.def("date:year", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(d.Year))))
		return nil
	})
	c.def("date:month", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewMonth(d.Month))
		return nil
	})
	c.def("date:day", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(d.Day))))
		return nil
	})
	c.def("date:weekday", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewWeekday(d.Weekday()))
		return nil
	})
	c.def("date:day-of-year", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(d.DayOfYear()))))
		return nil
	})
	c.def("date:days-in-month", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(d.DaysInMonth()))))
		return nil
	})
	c.def("date:days-in-year", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(d.DaysInYear()))))
		return nil
	})
	c.def("date:leap-year?", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewBoolean(d.IsLeapYear()))
		return nil
	})
	c.def("date:format", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(d.Format()))
		return nil
	})
	c.def("date:>number", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(d.Sub(epoch))))
		return nil
	})
	c.def("date:>vector", func(e value.Engine) error {
		d, err := popDate(e)
		if err != nil {
			return err
		}
		e.Push(value.NewVector([]value.Value{
			value.NewNumber(numberFromInt(int64(d.Year))),
			value.NewMonth(d.Month),
			value.NewNumber(numberFromInt(int64(d.Day))),
		}))
		return nil
	})

	c.def("time:hour", func(e value.Engine) error {
		t, err := popTime(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(t.Hour))))
		return nil
	})
	c.def("time:minute", func(e value.Engine) error {
		t, err := popTime(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(t.Minute))))
		return nil
	})
	c.def("time:second", func(e value.Engine) error {
		t, err := popTime(e)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(numberFromInt(int64(t.Second))))
		return nil
	})
	c.def("time:format", func(e value.Engine) error {
		t, err := popTime(e)
		if err != nil {
			return err
		}
		e.Push(value.NewString(t.Format()))
		return nil
	})
	c.def("time:>vector", func(e value.Engine) error {
		t, err := popTime(e)
		if err != nil {
			return err
		}
		e.Push(value.NewVector([]value.Value{
			value.NewNumber(numberFromInt(int64(t.Hour))),
			value.NewNumber(numberFromInt(int64(t.Minute))),
			value.NewNumber(numberFromInt(int64(t.Second))),
		}))
		return nil
	})
}
