package value

import (
	"testing"

	"github.com/laskin-lang/laskin/chronology"
	"github.com/laskin-lang/laskin/numeric"
)

func num(t *testing.T, text string) Value {
	t.Helper()
	n, err := numeric.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	return NewNumber(n)
}

func TestEqualAcrossVariantsIsFalse(t *testing.T) {
	if NewBoolean(true).Equal(num(t, "1")) {
		t.Error("boolean and number should never be equal")
	}
}

func TestEqualSameVariant(t *testing.T) {
	if !NewString("hi").Equal(NewString("hi")) {
		t.Error("identical strings should be equal")
	}
}

func TestVectorAddPointwise(t *testing.T) {
	a := NewVector([]Value{num(t, "1"), num(t, "2")})
	b := NewVector([]Value{num(t, "3"), num(t, "4")})
	sum, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := NewVector([]Value{num(t, "4"), num(t, "6")})
	if !sum.Equal(want) {
		t.Errorf("got %s, want %s", sum.ToString(), want.ToString())
	}
}

func TestVectorAddLengthMismatchRaisesRange(t *testing.T) {
	a := NewVector([]Value{num(t, "1")})
	b := NewVector([]Value{num(t, "1"), num(t, "2")})
	if _, err := Add(a, b); err == nil {
		t.Error("expected a range error for mismatched vector lengths")
	}
}

func TestStringConcatenation(t *testing.T) {
	sum, err := Add(NewString("foo"), NewString("bar"))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Text() != "foobar" {
		t.Errorf("got %q", sum.Text())
	}
}

func TestStringPlusVectorRaisesType(t *testing.T) {
	if _, err := Add(NewString("abc"), NewVector([]Value{num(t, "1")})); err == nil {
		t.Error("expected a type error")
	}
}

func TestRecordSubtractionDeletesKeys(t *testing.T) {
	r := NewEmptyRecord().Set("a", num(t, "1")).Set("b", num(t, "2"))
	toRemove := NewEmptyRecord().Set("a", NewBoolean(true))
	diff, err := Sub(NewRecord(r), NewRecord(toRemove))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Record().Len() != 1 {
		t.Errorf("expected one remaining key, got %d", diff.Record().Len())
	}
	if _, ok := diff.Record().Get("a"); ok {
		t.Error("key 'a' should have been deleted regardless of its value")
	}
}

func TestVectorBroadcastMul(t *testing.T) {
	v := NewVector([]Value{num(t, "1"), num(t, "2"), num(t, "3")})
	scaled, err := Mul(v, num(t, "10"))
	if err != nil {
		t.Fatal(err)
	}
	want := NewVector([]Value{num(t, "10"), num(t, "20"), num(t, "30")})
	if !scaled.Equal(want) {
		t.Errorf("got %s", scaled.ToString())
	}
}

func TestMonthArithmeticWraps(t *testing.T) {
	sum, err := Add(NewMonth(chronology.December), num(t, "1"))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Month() != chronology.January {
		t.Errorf("december + 1 = %s, want january", sum.Month())
	}
	diff, err := Sub(NewMonth(chronology.January), num(t, "2"))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Month() != chronology.November {
		t.Errorf("january - 2 = %s, want november", diff.Month())
	}
}

func TestMonthAddIntegerOnEitherSide(t *testing.T) {
	sum, err := Add(num(t, "1"), NewMonth(chronology.January))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Month() != chronology.February {
		t.Errorf("1 + january = %s, want february", sum.Month())
	}
}

func TestWeekdayArithmeticWraps(t *testing.T) {
	sum, err := Add(NewWeekday(chronology.Saturday), num(t, "1"))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Weekday() != chronology.Sunday {
		t.Errorf("saturday + 1 = %s, want sunday", sum.Weekday())
	}
	diff, err := Sub(NewWeekday(chronology.Monday), num(t, "2"))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Weekday() != chronology.Saturday {
		t.Errorf("monday - 2 = %s, want saturday", diff.Weekday())
	}
}

func TestMonthPlusUnitBearingNumberRaisesType(t *testing.T) {
	if _, err := Add(NewMonth(chronology.January), num(t, "1d")); err == nil {
		t.Error("expected a type error for a unit-bearing month offset")
	}
}

func TestRecordKeysPreserveInsertionOrder(t *testing.T) {
	r := NewEmptyRecord().Set("z", NewBoolean(true)).Set("a", NewBoolean(false)).Set("z", NewBoolean(false))
	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Errorf("got %v", keys)
	}
}

func TestToSourceRoundTripsStrings(t *testing.T) {
	v := NewString("a\"b\nc")
	if got := v.ToSource(); got != `"a\"b\nc"` {
		t.Errorf("got %q", got)
	}
}
