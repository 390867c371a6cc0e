package value

import (
	"strings"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/numeric"
)

// Compare orders v against other. Defined only within number, string,
// vector (lexicographic) and month (calendar order); anything else raises
// Type.
func (v Value) Compare(other Value) (int, error) {
	if v.kind != other.kind {
		return 0, lerr.New(lerr.Type, "cannot order %s against %s", v.kind, other.kind)
	}
	switch v.kind {
	case NumberKind:
		return numeric.Compare(v.number, other.number)
	case StringKind:
		return strings.Compare(v.text, other.text), nil
	case VectorKind:
		return compareVectors(v.vector, other.vector)
	case MonthKind:
		return int(v.month) - int(other.month), nil
	default:
		return 0, lerr.New(lerr.Type, "%s values are not ordered", v.kind)
	}
}

func compareVectors(a, b []Value) (int, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, err := a[i].Compare(b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return len(a) - len(b), nil
}
