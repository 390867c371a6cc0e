package chronology

import "testing"

func TestParseDateValid(t *testing.T) {
	d, err := ParseDate("2020-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year != 2020 || d.Month != February || d.Day != 29 {
		t.Errorf("got %+v", d)
	}
}

func TestParseDateInvalidDay(t *testing.T) {
	if _, err := ParseDate("2021-02-29"); err == nil {
		t.Error("expected range error for non-leap-year Feb 29")
	}
}

func TestParseDateInvalidMonth(t *testing.T) {
	if _, err := ParseDate("2020-13-01"); err == nil {
		t.Error("expected range error for month 13")
	}
}

func TestLeapYear(t *testing.T) {
	cases := map[int]bool{2000: true, 1900: false, 2020: true, 2021: false, 2400: true}
	for year, want := range cases {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestWeekdayEpoch(t *testing.T) {
	epoch := Date{Year: 1970, Month: January, Day: 1}
	if w := epoch.Weekday(); w != Thursday {
		t.Errorf("1970-01-01 weekday = %s, want thursday", w)
	}
}

func TestDateAddDaysRoundTrip(t *testing.T) {
	d := Date{Year: 2020, Month: February, Day: 27}
	shifted := d.AddDays(5).AddDays(-5)
	if shifted != d {
		t.Errorf("round trip failed: got %+v, want %+v", shifted, d)
	}
}

func TestDateSub(t *testing.T) {
	a := Date{Year: 2020, Month: March, Day: 1}
	b := Date{Year: 2020, Month: February, Day: 29}
	if got := a.Sub(b); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestDaysInMonthLeap(t *testing.T) {
	if got := DaysInMonth(2020, February); got != 29 {
		t.Errorf("got %d, want 29", got)
	}
	if got := DaysInMonth(2021, February); got != 28 {
		t.Errorf("got %d, want 28", got)
	}
}

func TestIsDateShapeOnly(t *testing.T) {
	if !IsDate("9999-99-99") {
		t.Error("IsDate should only check shape, not calendar validity")
	}
	if IsDate("2020/02/29") {
		t.Error("wrong separator should not match")
	}
}
