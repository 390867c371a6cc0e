package ast_test

import (
	"testing"

	"github.com/laskin-lang/laskin/ast"
	"github.com/laskin-lang/laskin/value"
)

// fakeEngine is a minimal value.Engine for exercising node behavior in
// isolation, without pulling in the full engine package.
type fakeEngine struct {
	stack []value.Value
	dict  map[string]value.Value
	out   []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{dict: make(map[string]value.Value)}
}

func (f *fakeEngine) Push(v value.Value) { f.stack = append(f.stack, v) }
func (f *fakeEngine) Pop() (value.Value, error) {
	if len(f.stack) == 0 {
		return value.Value{}, errUnderflow
	}
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v, nil
}
func (f *fakeEngine) Peek() (value.Value, error) {
	if len(f.stack) == 0 {
		return value.Value{}, errUnderflow
	}
	return f.stack[len(f.stack)-1], nil
}
func (f *fakeEngine) Depth() int { return len(f.stack) }
func (f *fakeEngine) Clear()     { f.stack = nil }
func (f *fakeEngine) Write(s string) { f.out = append(f.out, s) }
func (f *fakeEngine) Lookup(key string) (value.Value, bool) {
	v, ok := f.dict[key]
	return v, ok
}
func (f *fakeEngine) Define(key string, v value.Value) { f.dict[key] = v }
func (f *fakeEngine) Execute(nodes []value.Executable) error {
	for _, n := range nodes {
		if err := n.Execute(f); err != nil {
			return err
		}
	}
	return nil
}

type stubErr struct{ msg string }

func (e stubErr) Error() string { return e.msg }

var errUnderflow = stubErr{"stack underflow"}

func TestLiteralExecutePushes(t *testing.T) {
	e := newFakeEngine()
	lit := ast.NewLiteral(1, 1, value.NewBoolean(true))
	if err := lit.Execute(e); err != nil {
		t.Fatal(err)
	}
	if e.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", e.Depth())
	}
}

func TestDefinitionBindsPoppedValue(t *testing.T) {
	e := newFakeEngine()
	e.Push(value.NewBoolean(true))
	def := ast.NewDefinition(1, 1, "flag")
	if err := def.Execute(e); err != nil {
		t.Fatal(err)
	}
	if e.Depth() != 0 {
		t.Fatal("definition should have popped the value")
	}
	v, ok := e.Lookup("flag")
	if !ok || !v.Bool() {
		t.Fatal("expected flag to be bound to true")
	}
}

func TestDefinitionEvaluateRaisesSyntax(t *testing.T) {
	e := newFakeEngine()
	def := ast.NewDefinition(1, 1, "x")
	if _, err := def.Evaluate(e); err == nil {
		t.Fatal("expected a syntax error in expression position")
	}
}

func TestSymbolEvaluateDrop(t *testing.T) {
	e := newFakeEngine()
	e.Push(value.NewBoolean(true))
	sym := ast.NewSymbol(1, 1, "drop")
	v, err := sym.Evaluate(e)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Bool() {
		t.Fatal("expected dropped value to be true")
	}
	if e.Depth() != 0 {
		t.Fatal("drop should have popped the stack")
	}
}

func TestSymbolExecuteTypedDispatchBeforePlain(t *testing.T) {
	e := newFakeEngine()
	e.Push(value.NewBoolean(true))
	e.Define("boolean:id", value.NewBoolean(false))
	e.Define("id", value.NewBoolean(true))
	sym := ast.NewSymbol(1, 1, "id")
	if err := sym.Execute(e); err != nil {
		t.Fatal(err)
	}
	top, _ := e.Peek()
	if top.Bool() {
		t.Fatal("expected the typed (boolean:id) binding to win")
	}
}

func TestSymbolExecuteUnknownRaisesName(t *testing.T) {
	e := newFakeEngine()
	sym := ast.NewSymbol(1, 1, "nonsense-word")
	if err := sym.Execute(e); err == nil {
		t.Fatal("expected a name error")
	}
}

func TestVectorLiteralEvaluatesChildrenFresh(t *testing.T) {
	e := newFakeEngine()
	e.Push(value.NewBoolean(true))
	vec := ast.NewVectorLiteral(1, 1, []value.Executable{ast.NewSymbol(1, 2, "drop")})
	v, err := vec.Evaluate(e)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Vector()) != 1 || !v.Vector()[0].Bool() {
		t.Fatalf("got %+v", v.Vector())
	}
}
