package numeric

import (
	"testing"

	"github.com/shopspring/decimal"

	lerr "github.com/laskin-lang/laskin/errors"
)

func TestParseValid(t *testing.T) {
	cases := []string{"1", "-1", "3.14", "5kg", "-2.5m", "0"}
	for _, c := range cases {
		if !IsValid(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "+", "-", ".", ".5", "5.", "abc", "5xyz", "5 m"}
	for _, c := range cases {
		if IsValid(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestAddSameUnit(t *testing.T) {
	a, _ := Parse("2m")
	b, _ := Parse("3m")
	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "5m" {
		t.Errorf("got %s, want 5m", sum.String())
	}
}

func TestAddRenormalizes(t *testing.T) {
	a, _ := Parse("500g")
	b, _ := Parse("600g")
	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "1.1kg" {
		t.Errorf("got %s, want 1.1kg", sum.String())
	}
}

func TestAddMismatchedQuantityRaisesUnit(t *testing.T) {
	a, _ := Parse("1m")
	b, _ := Parse("1kg")
	if _, err := Add(a, b); !isUnitErr(err) {
		t.Errorf("expected unit error, got %v", err)
	}
}

func TestDivByZeroRaisesRange(t *testing.T) {
	a, _ := Parse("1")
	b, _ := Parse("0")
	if _, err := Div(a, b); !isRangeErr(err) {
		t.Errorf("expected range error, got %v", err)
	}
}

func TestMulBareKeepsUnit(t *testing.T) {
	a, _ := Parse("5m")
	b, _ := Parse("2")
	res, err := Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res.String() != "10m" {
		t.Errorf("got %s, want 10m", res.String())
	}
}

func TestCompareBareLeftAllowed(t *testing.T) {
	a, _ := Parse("5")
	b, _ := Parse("3m")
	if _, err := Compare(a, b); err != nil {
		t.Errorf("bare-left comparison should be allowed: %v", err)
	}
}

func TestCompareUnitLeftBareRightRaisesType(t *testing.T) {
	a, _ := Parse("3m")
	b, _ := Parse("5")
	if _, err := Compare(a, b); err == nil {
		t.Error("expected an error comparing unit-left to bare-right")
	}
}

func TestLogZeroRaisesDomain(t *testing.T) {
	zero, _ := Parse("0")
	if _, err := Log(zero); err == nil {
		t.Error("expected domain error for log(0)")
	}
}

func TestToLongOverflow(t *testing.T) {
	d, err := decimal.NewFromString("99999999999999999999999999999")
	if err != nil {
		t.Fatal(err)
	}
	n := Number{Value: d}
	if _, err := n.ToLong(); err == nil {
		t.Error("expected range error on overflow")
	}
}

func isUnitErr(err error) bool  { return lerr.Is(err, lerr.Unit) }
func isRangeErr(err error) bool { return lerr.Is(err, lerr.Range) }
