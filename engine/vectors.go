package engine

import (
	"sort"

	"github.com/laskin-lang/laskin/chronology"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/numeric"
	"github.com/laskin-lang/laskin/value"
)

// registerVectors installs the vector: word family. max/min/mean/sum/
// reduce all raise range on an empty vector, index words accept negative
// indices counted from the end, and vector:>date/vector:>time require
// exactly three elements.
func registerVectors(c *Context) {
	c.def("vector", func(e value.Engine) error {
		n, err := popLong(e)
		if err != nil {
			return err
		}
		if n < 0 {
			return lerr.New(lerr.Range, "vector size must not be negative")
		}
		items := make([]value.Value, n)
		for i := n - 1; i >= 0; i-- {
			v, err := e.Pop()
			if err != nil {
				return err
			}
			items[i] = v
		}
		e.Push(value.NewVector(items))
		return nil
	})

	c.def("vector:length", func(e value.Engine) error {
		v, err := e.Peek()
		if err != nil {
			return err
		}
		if !v.IsVector() {
			return lerr.New(lerr.Type, "expected a vector, got %s", v.Kind())
		}
		e.Pop()
		e.Push(value.NewNumber(numberFromInt(int64(len(v.Vector())))))
		return nil
	})

	c.def("vector:max", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) == 0 {
			return lerr.New(lerr.Range, "vector is empty")
		}
		best := vec[0]
		for _, candidate := range vec[1:] {
			cmp, err := candidate.Compare(best)
			if err != nil {
				return err
			}
			if cmp > 0 {
				best = candidate
			}
		}
		e.Push(best)
		return nil
	})
	c.def("vector:min", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) == 0 {
			return lerr.New(lerr.Range, "vector is empty")
		}
		best := vec[0]
		for _, candidate := range vec[1:] {
			cmp, err := candidate.Compare(best)
			if err != nil {
				return err
			}
			if cmp < 0 {
				best = candidate
			}
		}
		e.Push(best)
		return nil
	})
	c.def("vector:mean", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) == 0 {
			return lerr.New(lerr.Range, "vector is empty")
		}
		sum, err := sumNumbers(vec)
		if err != nil {
			return err
		}
		mean, err := numeric.Div(sum, numeric.FromInt(int64(len(vec))))
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(mean))
		return nil
	})
	c.def("vector:sum", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) == 0 {
			return lerr.New(lerr.Range, "vector is empty")
		}
		sum, err := sumNumbers(vec)
		if err != nil {
			return err
		}
		e.Push(value.NewNumber(sum))
		return nil
	})

	c.def("vector:for-each", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		for _, item := range vec {
			e.Push(item)
			if err := quote.Call(e); err != nil {
				return err
			}
		}
		return nil
	})
	c.def("vector:map", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		result := make([]value.Value, len(vec))
		for i, item := range vec {
			e.Push(item)
			if err := quote.Call(e); err != nil {
				return err
			}
			r, err := e.Pop()
			if err != nil {
				return err
			}
			result[i] = r
		}
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:filter", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		var result []value.Value
		for _, item := range vec {
			e.Push(item)
			if err := quote.Call(e); err != nil {
				return err
			}
			keep, err := popBoolean(e)
			if err != nil {
				return err
			}
			if keep {
				result = append(result, item)
			}
		}
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:reduce", func(e value.Engine) error {
		quote, err := popQuote(e)
		if err != nil {
			return err
		}
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) == 0 {
			return lerr.New(lerr.Range, "cannot reduce an empty vector")
		}
		acc := vec[0]
		for _, item := range vec[1:] {
			e.Push(acc)
			e.Push(item)
			if err := quote.Call(e); err != nil {
				return err
			}
			acc, err = e.Pop()
			if err != nil {
				return err
			}
		}
		e.Push(acc)
		return nil
	})

	c.def("vector:prepend", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		v, err := e.Pop()
		if err != nil {
			return err
		}
		result := append([]value.Value{v}, vec...)
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:append", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		v, err := e.Pop()
		if err != nil {
			return err
		}
		result := append(append([]value.Value{}, vec...), v)
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:insert", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		v, err := e.Pop()
		if err != nil {
			return err
		}
		idx, err := popLong(e)
		if err != nil {
			return err
		}
		i := normalizeIndex(idx, len(vec))
		if len(vec) == 0 || i < 0 || i > int64(len(vec)) {
			return lerr.New(lerr.Range, "vector index out of bounds")
		}
		result := make([]value.Value, 0, len(vec)+1)
		result = append(result, vec[:i]...)
		result = append(result, v)
		result = append(result, vec[i:]...)
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:reverse", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		result := make([]value.Value, len(vec))
		for i, v := range vec {
			result[len(vec)-1-i] = v
		}
		e.Push(value.NewVector(result))
		return nil
	})
	c.def("vector:extract", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		for _, v := range vec {
			e.Push(v)
		}
		return nil
	})
	c.def("vector:sort", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		result := append([]value.Value{}, vec...)
		var sortErr error
		sort.SliceStable(result, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			cmp, err := result[i].Compare(result[j])
			if err != nil {
				sortErr = err
				return false
			}
			return cmp < 0
		})
		if sortErr != nil {
			return sortErr
		}
		e.Push(value.NewVector(result))
		return nil
	})

	c.def("vector:@", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		idx, err := popLong(e)
		if err != nil {
			return err
		}
		i := normalizeIndex(idx, len(vec))
		if len(vec) == 0 || i < 0 || i >= int64(len(vec)) {
			return lerr.New(lerr.Range, "vector index out of bounds")
		}
		e.Push(vec[i])
		return nil
	})

	c.def("vector:>date", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) != 3 {
			return lerr.New(lerr.Range, "date needs three values")
		}
		if !vec[0].IsNumber() {
			return lerr.New(lerr.Type, "expected a number for the year")
		}
		year, err := vec[0].Number().ToLong()
		if err != nil {
			return err
		}
		var month int
		if vec[1].IsMonth() {
			month = int(vec[1].Month())
		} else if vec[1].IsNumber() {
			m, err := vec[1].Number().ToLong()
			if err != nil {
				return err
			}
			if m < 1 || m > 12 {
				return lerr.New(lerr.Range, "given month is out of range")
			}
			month = int(m)
		} else {
			return lerr.New(lerr.Type, "expected a number or month")
		}
		if !vec[2].IsNumber() {
			return lerr.New(lerr.Type, "expected a number for the day")
		}
		day, err := vec[2].Number().ToLong()
		if err != nil {
			return err
		}
		d := chronology.Date{Year: int(year), Month: chronology.Month(month), Day: int(day)}
		if !d.IsValid() {
			return lerr.New(lerr.Range, "invalid date")
		}
		e.Push(value.NewDate(d))
		return nil
	})
	c.def("vector:>time", func(e value.Engine) error {
		vec, err := popVector(e)
		if err != nil {
			return err
		}
		if len(vec) != 3 {
			return lerr.New(lerr.Range, "time needs three values")
		}
		parts := make([]int64, 3)
		for i := 0; i < 3; i++ {
			if !vec[i].IsNumber() {
				return lerr.New(lerr.Type, "expected a number")
			}
			n, err := vec[i].Number().ToLong()
			if err != nil {
				return err
			}
			parts[i] = n
		}
		t := chronology.Time{Hour: int(parts[0]), Minute: int(parts[1]), Second: int(parts[2])}
		if !t.IsValid() {
			return lerr.New(lerr.Range, "invalid time")
		}
		e.Push(value.NewTime(t))
		return nil
	})
}

func sumNumbers(vec []value.Value) (numeric.Number, error) {
	if !vec[0].IsNumber() {
		return numeric.Number{}, lerr.New(lerr.Type, "expected a number, got %s", vec[0].Kind())
	}
	sum := vec[0].Number()
	for _, item := range vec[1:] {
		if !item.IsNumber() {
			return numeric.Number{}, lerr.New(lerr.Type, "expected a number, got %s", item.Kind())
		}
		var err error
		sum, err = numeric.Add(sum, item.Number())
		if err != nil {
			return numeric.Number{}, err
		}
	}
	return sum, nil
}

// normalizeIndex turns a negative index into one counted from the end of
// a collection of the given length, leaving non-negative indices as is.
func normalizeIndex(idx int64, length int) int64 {
	if idx < 0 {
		return idx + int64(length)
	}
	return idx
}
