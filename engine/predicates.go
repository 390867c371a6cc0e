package engine

import "github.com/laskin-lang/laskin/value"

// registerPredicates installs the type-predicate words; each pops the top
// value and pushes whether it was of the named variant (the usual "dup
// number?" idiom keeps the original around if the caller still needs it).
func registerPredicates(c *Context) {
	kinds := map[string]value.Kind{
		"boolean?": value.Boolean,
		"number?":  value.NumberKind,
		"string?":  value.StringKind,
		"vector?":  value.VectorKind,
		"record?":  value.RecordKind,
		"quote?":   value.QuoteKind,
		"date?":    value.DateKind,
		"time?":    value.TimeKind,
		"month?":   value.MonthKind,
		"weekday?": value.WeekdayKind,
	}
	for name, kind := range kinds {
		k := kind
		c.def(name, func(e value.Engine) error {
			v, err := e.Pop()
			if err != nil {
				return err
			}
			e.Push(value.NewBoolean(v.Kind() == k))
			return nil
		})
	}
}
