package value

import (
	"github.com/laskin-lang/laskin/chronology"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/units"
)

// addDateNumber implements date + n: a bare count or a "d"-unit count
// adds n days; any other time-quantity unit raises Type. sign is 1 for
// add, -1 for subtract.
func addDateNumber(dateVal, numVal Value, sign int64) (Value, error) {
	n := numVal.number
	if n.HasUnit() {
		if n.Unit.Quantity != units.Time || n.Unit.Symbol != "d" {
			return Value{}, lerr.New(lerr.Type, "a date may only be offset by a count of days")
		}
	}
	days, err := n.DropUnit().ToLong()
	if err != nil {
		return Value{}, err
	}
	return NewDate(dateVal.date.AddDays(sign * days)), nil
}

// addTimeNumber implements time ± n: a bare count or an "s"-unit count
// adds n seconds; "min"/"h"/"d" scale accordingly; any other quantity
// raises Type.
func addTimeNumber(timeVal, numVal Value, sign int64) (Value, error) {
	n := numVal.number
	seconds, err := n.DropUnit().ToLong()
	if err != nil {
		return Value{}, err
	}
	if n.HasUnit() {
		if n.Unit.Quantity != units.Time {
			return Value{}, lerr.New(lerr.Type, "a time may only be offset by a duration")
		}
		switch n.Unit.Symbol {
		case "s":
		case "min":
			seconds *= 60
		case "h":
			seconds *= 3600
		case "d":
			seconds *= 86400
		default:
			return Value{}, lerr.New(lerr.Type, "%s is not a valid duration unit for time offsets", n.Unit.Symbol)
		}
	}
	return NewTime(timeVal.time.AddSeconds(sign * seconds)), nil
}

// addMonthNumber and addWeekdayNumber implement month/weekday ± integer,
// wrapping cyclically in both directions. The offset must be a bare
// integral number. sign is 1 for add, -1 for subtract.
func addMonthNumber(m chronology.Month, numVal Value, sign int64) (Value, error) {
	if numVal.number.HasUnit() {
		return Value{}, lerr.New(lerr.Type, "a month may only be offset by a bare integer")
	}
	n, err := numVal.number.ToLong()
	if err != nil {
		return Value{}, err
	}
	return NewMonth(m.Add(int(sign * n))), nil
}

func addWeekdayNumber(w chronology.Weekday, numVal Value, sign int64) (Value, error) {
	if numVal.number.HasUnit() {
		return Value{}, lerr.New(lerr.Type, "a weekday may only be offset by a bare integer")
	}
	n, err := numVal.number.ToLong()
	if err != nil {
		return Value{}, err
	}
	return NewWeekday(w.Add(int(sign * n))), nil
}

func unitDays() (*units.Unit, error) {
	u, ok := units.FindBySymbol("d")
	if !ok {
		return nil, lerr.New(lerr.System, "unit catalog missing day unit")
	}
	return &u, nil
}

func unitSeconds() (*units.Unit, error) {
	u, ok := units.FindBySymbol("s")
	if !ok {
		return nil, lerr.New(lerr.System, "unit catalog missing second unit")
	}
	return &u, nil
}
