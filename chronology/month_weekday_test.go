package chronology

import "testing"

func TestMonthFromName(t *testing.T) {
	m, ok := MonthFromName("March")
	if !ok || m != March {
		t.Errorf("got %v, %v", m, ok)
	}
}

func TestMonthAddWraps(t *testing.T) {
	if got := December.Add(1); got != January {
		t.Errorf("got %s, want january", got)
	}
	if got := January.Add(-1); got != December {
		t.Errorf("got %s, want december", got)
	}
}

func TestWeekdayFromName(t *testing.T) {
	w, ok := WeekdayFromName("Friday")
	if !ok || w != Friday {
		t.Errorf("got %v, %v", w, ok)
	}
}

func TestWeekdayAddWraps(t *testing.T) {
	if got := Saturday.Add(1); got != Sunday {
		t.Errorf("got %s, want sunday", got)
	}
}

func TestWeekdayIsWeekend(t *testing.T) {
	if !Saturday.IsWeekend() || !Sunday.IsWeekend() {
		t.Error("saturday and sunday should be weekend")
	}
	if Monday.IsWeekend() {
		t.Error("monday should not be weekend")
	}
}
