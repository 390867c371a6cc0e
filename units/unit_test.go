package units

import "testing"

func TestFindBySymbol(t *testing.T) {
	u, ok := FindBySymbol("kg")
	if !ok {
		t.Fatal("expected kg to be found")
	}
	if u.Quantity != Mass || u.Multiplier != 1 {
		t.Errorf("unexpected kg unit: %+v", u)
	}

	if _, ok := FindBySymbol("lb"); ok {
		t.Error("lb is not in the closed catalog")
	}
}

func TestBaseOf(t *testing.T) {
	cases := map[Quantity]string{Length: "m", Mass: "kg", Time: "s"}
	for q, want := range cases {
		got := BaseOf(q)
		if got.Symbol != want {
			t.Errorf("BaseOf(%s) = %s, want %s", q, got.Symbol, want)
		}
		if !got.IsBase() {
			t.Errorf("BaseOf(%s) should be marked IsBase", q)
		}
	}
}

func TestAllOfDescending(t *testing.T) {
	all := AllOf(Length)
	syms := make([]string, len(all))
	for i, u := range all {
		syms[i] = u.Symbol
	}
	want := []string{"km", "m", "cm", "mm"}
	if len(syms) != len(want) {
		t.Fatalf("got %v, want %v", syms, want)
	}
	for i := range want {
		if syms[i] != want[i] {
			t.Fatalf("got %v, want %v", syms, want)
		}
	}
}

func TestToBaseRatio(t *testing.T) {
	mm, _ := FindBySymbol("mm")
	r := mm.ToBaseRatio()
	if r.Num().Int64() != 1 || r.Denom().Int64() != 1000 {
		t.Errorf("mm ratio = %v, want 1/1000", r)
	}

	km, _ := FindBySymbol("km")
	r = km.ToBaseRatio()
	if r.Num().Int64() != 1000 || r.Denom().Int64() != 1 {
		t.Errorf("km ratio = %v, want 1000/1", r)
	}
}
