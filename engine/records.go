package engine

import (
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/value"
)

// registerRecords installs the record: word family. record:@ raises
// range rather than name for a missing key, for consistency with the
// other container element-access words. record:@= never mutates the
// record on the stack; it returns a new record with the key set or
// added.
func registerRecords(c *Context) {
	c.def("record:size", func(e value.Engine) error {
		v, err := e.Peek()
		if err != nil {
			return err
		}
		if !v.IsRecord() {
			return lerr.New(lerr.Type, "expected a record, got %s", v.Kind())
		}
		e.Pop()
		e.Push(value.NewNumber(numberFromInt(int64(v.Record().Len()))))
		return nil
	})
	c.def("record:keys", func(e value.Engine) error {
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		keys := r.Keys()
		items := make([]value.Value, len(keys))
		for i, k := range keys {
			items[i] = value.NewString(k)
		}
		e.Push(value.NewVector(items))
		return nil
	})
	c.def("record:values", func(e value.Engine) error {
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		e.Push(value.NewVector(r.Values()))
		return nil
	})

	c.def("record:for-each", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		return r.ForEach(func(key string, v value.Value) error {
			e.Push(value.NewString(key))
			e.Push(v)
			return quote.Call(e)
		})
	})
	c.def("record:map", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		result := value.NewEmptyRecord()
		err = r.ForEach(func(key string, v value.Value) error {
			e.Push(value.NewString(key))
			e.Push(v)
			if err := quote.Call(e); err != nil {
				return err
			}
			newVal, err := e.Pop()
			if err != nil {
				return err
			}
			newKey, err := popString(e)
			if err != nil {
				return err
			}
			result = result.Set(newKey, newVal)
			return nil
		})
		if err != nil {
			return err
		}
		e.Push(value.NewRecord(result))
		return nil
	})
	c.def("record:filter", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		result := value.NewEmptyRecord()
		err = r.ForEach(func(key string, v value.Value) error {
			e.Push(value.NewString(key))
			e.Push(v)
			if err := quote.Call(e); err != nil {
				return err
			}
			keep, err := popBoolean(e)
			if err != nil {
				return err
			}
			if keep {
				result = result.Set(key, v)
			}
			return nil
		})
		if err != nil {
			return err
		}
		e.Push(value.NewRecord(result))
		return nil
	})

	c.def("record:@", func(e value.Engine) error {
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		key, err := popString(e)
		if err != nil {
			return err
		}
		v, ok := r.Get(key)
		if !ok {
			return lerr.New(lerr.Range, "record index out of bounds")
		}
		e.Push(v)
		return nil
	})
	c.def("record:@=", func(e value.Engine) error {
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		key, err := popString(e)
		if err != nil {
			return err
		}
		v, err := e.Pop()
		if err != nil {
			return err
		}
		e.Push(value.NewRecord(r.Set(key, v)))
		return nil
	})

	c.def("record:>vector", func(e value.Engine) error {
		r, err := popRecord(e)
		if err != nil {
			return err
		}
		keys := r.Keys()
		items := make([]value.Value, len(keys))
		for i, k := range keys {
			v, _ := r.Get(k)
			items[i] = value.NewVector([]value.Value{value.NewString(k), v})
		}
		e.Push(value.NewVector(items))
		return nil
	})
}
