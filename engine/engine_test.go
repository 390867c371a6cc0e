package engine

import (
	"bytes"
	"testing"
)

// run executes source against a fresh context and returns everything
// written to the output sink.
func run(t *testing.T, source string) string {
	t.Helper()
	var buf bytes.Buffer
	c := NewContext()
	if err := c.ExecuteSource(source, 1, &buf); err != nil {
		t.Fatalf("ExecuteSource(%q) failed: %v", source, err)
	}
	return buf.String()
}

func runErr(t *testing.T, source string) error {
	t.Helper()
	var buf bytes.Buffer
	c := NewContext()
	return c.ExecuteSource(source, 1, &buf)
}

func TestArithmeticAndUnits(t *testing.T) {
	cases := map[string]string{
		`1 2 + .`:          "3\n",
		`10 3 - .`:         "7\n",
		`1000m 1km + .`:    "2km\n",
		`"a" "b" + .`:      "ab\n",
		`3 4 max .`:        "4\n",
		`2 3 < .`:          "true\n",
	}
	for src, want := range cases {
		if got := run(t, src); got != want {
			t.Errorf("%q => %q, want %q", src, got, want)
		}
	}
}

func TestBooleans(t *testing.T) {
	if got := run(t, `true false boolean:and .`); got != "false\n" {
		t.Errorf("boolean:and => %q", got)
	}
	if got := run(t, `true false boolean:or .`); got != "true\n" {
		t.Errorf("boolean:or => %q", got)
	}
	if got := run(t, `true boolean:not .`); got != "false\n" {
		t.Errorf("boolean:not => %q", got)
	}
}

func TestNumberTranscendentals(t *testing.T) {
	if got := run(t, `0 number:sin .`); got != "0\n" {
		t.Errorf("number:sin => %q", got)
	}
	if got := run(t, `4 number:sqrt .`); got != "2\n" {
		t.Errorf("number:sqrt => %q", got)
	}
	if got := run(t, `2 3 number:pow .`); got != "8\n" {
		t.Errorf("number:pow => %q", got)
	}
}

func TestNumberClampAndRange(t *testing.T) {
	if got := run(t, `5 0 10 number:range .`); got != "true\n" {
		t.Errorf("number:range => %q", got)
	}
	if got := run(t, `15 0 10 number:clamp .`); got != "10\n" {
		t.Errorf("number:clamp => %q", got)
	}
}

func TestStringWords(t *testing.T) {
	if got := run(t, `"hello" string:upper-case .`); got != "HELLO\n" {
		t.Errorf("string:upper-case => %q", got)
	}
	if got := run(t, `"HELLO" string:lower-case .`); got != "hello\n" {
		t.Errorf("string:lower-case => %q", got)
	}
	if got := run(t, `"Hello" string:swap-case .`); got != "hELLO\n" {
		t.Errorf("string:swap-case => %q", got)
	}
	if got := run(t, `"hello" 1 3 string:substring .`); got != "ell\n" {
		t.Errorf("string:substring => %q", got)
	}
	if got := run(t, `"aXbXc" "X" string:split vector:length .`); got != "3\n" {
		t.Errorf("string:split => %q", got)
	}
	if got := run(t, `"aXbXc" "X" "-" string:replace .`); got != "a-bXc\n" {
		t.Errorf("string:replace (first occurrence only) => %q", got)
	}
	if got := run(t, `"7" 4 "0" string:pad-start .`); got != "0007\n" {
		t.Errorf("string:pad-start => %q", got)
	}
}

func TestVectorWords(t *testing.T) {
	if got := run(t, `[1, 2, 3] (dup *) vector:map .`); got != "1, 4, 9\n" {
		t.Errorf("vector:map => %q", got)
	}
	if got := run(t, `[1, 2, 3] vector:sum .`); got != "6\n" {
		t.Errorf("vector:sum => %q", got)
	}
	if got := run(t, `[1, 2, 3] vector:reverse .`); got != "3, 2, 1\n" {
		t.Errorf("vector:reverse => %q", got)
	}
	if got := run(t, `[3, 1, 2] vector:sort .`); got != "1, 2, 3\n" {
		t.Errorf("vector:sort => %q", got)
	}
	if err := runErr(t, `[] vector:sum .`); err == nil {
		t.Error("vector:sum on empty vector should raise range")
	}
}

func TestRecordWords(t *testing.T) {
	if got := run(t, `{ "a": 1, "b": 2 } record:size .`); got != "2\n" {
		t.Errorf("record:size => %q", got)
	}
	if got := run(t, `"b" 2 "b" { "a": 1 } record:@= record:@ .`); got != "2\n" {
		t.Errorf("record:@= then record:@ => %q", got)
	}
	if err := runErr(t, `"missing" { "a": 1 } record:@ .`); err == nil {
		t.Error("record:@ on a missing key should raise an error")
	}
}

func TestQuoteCombinators(t *testing.T) {
	if got := run(t, `(1 +) (2 *) quote:compose 3 swap quote:call .`); got != "8\n" {
		t.Errorf("quote:compose => %q", got)
	}
	if got := run(t, `true (boolean:not) quote:call .`); got != "false\n" {
		t.Errorf("quote:call => %q", got)
	}
}

func TestDatesAndTimes(t *testing.T) {
	if got := run(t, `2020-02-29 date:leap-year? .`); got != "true\n" {
		t.Errorf("date:leap-year? => %q", got)
	}
	if got := run(t, `2020-02-29 date:day .`); got != "29\n" {
		t.Errorf("date:day => %q", got)
	}
	if got := run(t, `12:30:00 time:hour .`); got != "12\n" {
		t.Errorf("time:hour => %q", got)
	}
	if got := run(t, `[2020, 2, 29] vector:>date date:format .`); got != "2020-02-29\n" {
		t.Errorf("vector:>date => %q", got)
	}
}

func TestMonthsAndWeekdays(t *testing.T) {
	if got := run(t, `january month:>number .`); got != "1\n" {
		t.Errorf("month:>number => %q", got)
	}
	if got := run(t, `saturday weekday:weekend? .`); got != "true\n" {
		t.Errorf("weekday:weekend? => %q", got)
	}
	if got := run(t, `january 1 + .`); got != "february\n" {
		t.Errorf("january 1 + => %q", got)
	}
	if got := run(t, `december 1 + .`); got != "january\n" {
		t.Errorf("december 1 + => %q", got)
	}
	if got := run(t, `monday 2 - .`); got != "saturday\n" {
		t.Errorf("monday 2 - => %q", got)
	}
	if got := run(t, `1 sunday + .`); got != "monday\n" {
		t.Errorf("1 sunday + => %q", got)
	}
}

func TestTraceAndSessionID(t *testing.T) {
	c := NewContext()
	if c.SessionID() == "" {
		t.Fatal("SessionID() should never be empty")
	}
	var trace bytes.Buffer
	c.EnableTrace(&trace)
	var out bytes.Buffer
	if err := c.ExecuteSource(`1 2 + .`, 1, &out); err != nil {
		t.Fatalf("ExecuteSource failed: %v", err)
	}
	if trace.Len() == 0 {
		t.Fatal("expected trace output once EnableTrace is set")
	}
	if got := out.String(); got != "3\n" {
		t.Errorf("unexpected program output %q", got)
	}
}

func TestControlFlow(t *testing.T) {
	if got := run(t, `true (1) (2) if-else .`); got != "1\n" {
		t.Errorf("if-else (true) => %q", got)
	}
	if got := run(t, `false (1) (2) if-else .`); got != "2\n" {
		t.Errorf("if-else (false) => %q", got)
	}
}
