package engine

import "github.com/laskin-lang/laskin/value"

// def is a small registration helper: it wraps fn as a native quote bound
// at name.
func (c *Context) def(name string, fn value.NativeFunc) {
	c.Define(name, value.NewQuote(value.NewNativeQuote(name, fn)))
}

// registerAll installs every built-in word table. Each table lives in
// its own file, one per word family.
func registerAll(c *Context) {
	registerStack(c)
	registerConstants(c)
	registerComparisonAndArithmetic(c)
	registerPredicates(c)
	registerConversions(c)
	registerControl(c)
	registerDictionaryWords(c)
	registerIO(c)
	registerBooleans(c)
	registerNumbers(c)
	registerStrings(c)
	registerVectors(c)
	registerRecords(c)
	registerQuotes(c)
	registerDatesAndTimes(c)
	registerMonthsAndWeekdays(c)
}
