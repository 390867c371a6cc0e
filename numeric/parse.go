package numeric

import (
	"regexp"

	"github.com/shopspring/decimal"

	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/units"
)

// numberPattern matches: optional sign, one or more digits, optional dot
// plus one or more digits, optional trailing unit symbol letters. A lone
// sign, a bare dot, or a dot missing a digit on either side never match.
var numberPattern = regexp.MustCompile(`^([+-]?)(\d+)(\.(\d+))?([A-Za-z]+)?$`)

// Parse reads a number literal: optional sign, digits, optional fraction,
// optional trailing unit symbol.
func Parse(text string) (Number, error) {
	m := numberPattern.FindStringSubmatch(text)
	if m == nil {
		return Number{}, lerr.New(lerr.Syntax, "invalid number literal %q", text)
	}

	decText := m[1] + m[2]
	if m[3] != "" {
		decText += "." + m[4]
	}

	val, err := decimal.NewFromString(decText)
	if err != nil {
		return Number{}, lerr.New(lerr.Syntax, "invalid number literal %q", text)
	}

	n := Number{Value: val}
	if sym := m[5]; sym != "" {
		u, ok := units.FindBySymbol(sym)
		if !ok {
			return Number{}, lerr.New(lerr.Syntax, "unknown unit %q in %q", sym, text)
		}
		n.Unit = &u
	}
	return n, nil
}

// IsValid reports whether text parses as a number literal.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}
