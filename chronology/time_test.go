package chronology

import "testing"

func TestParseTimeValid(t *testing.T) {
	tm, err := ParseTime("23:59:59")
	if err != nil {
		t.Fatal(err)
	}
	if tm.Hour != 23 || tm.Minute != 59 || tm.Second != 59 {
		t.Errorf("got %+v", tm)
	}
}

func TestParseTimeOutOfRange(t *testing.T) {
	if _, err := ParseTime("24:00:00"); err == nil {
		t.Error("expected range error for hour 24")
	}
}

func TestParseTimeWrongShape(t *testing.T) {
	if _, err := ParseTime("1:2:3"); err == nil {
		t.Error("expected syntax error for non-padded time")
	}
}

func TestTimeAddSecondsWraps(t *testing.T) {
	tm := Time{Hour: 23, Minute: 59, Second: 59}
	shifted := tm.AddSeconds(2)
	want := Time{Hour: 0, Minute: 0, Second: 1}
	if shifted != want {
		t.Errorf("got %+v, want %+v", shifted, want)
	}
}

func TestTimeAddSecondsNegativeWraps(t *testing.T) {
	tm := Time{Hour: 0, Minute: 0, Second: 0}
	shifted := tm.AddSeconds(-1)
	want := Time{Hour: 23, Minute: 59, Second: 59}
	if shifted != want {
		t.Errorf("got %+v, want %+v", shifted, want)
	}
}

func TestTimeSub(t *testing.T) {
	a := Time{Hour: 1, Minute: 0, Second: 0}
	b := Time{Hour: 0, Minute: 0, Second: 30}
	if got := a.Sub(b); got != 3570 {
		t.Errorf("got %d, want 3570", got)
	}
}
