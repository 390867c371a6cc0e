package parser_test

import (
	"testing"

	"github.com/laskin-lang/laskin/parser"
)

func TestParseScriptSimpleArithmetic(t *testing.T) {
	q, err := parser.ParseScript("1 2 + .", 1)
	if err != nil {
		t.Fatal(err)
	}
	if q.IsNative() {
		t.Fatal("expected a user quote")
	}
	if len(q.Nodes()) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(q.Nodes()))
	}
}

func TestParseScriptDefinition(t *testing.T) {
	q, err := parser.ParseScript("5 -> x  x x * .", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(q.Nodes()))
	}
}

func TestParseScriptComment(t *testing.T) {
	q, err := parser.ParseScript("1 # this is a comment\n2 +", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(q.Nodes()))
	}
}

func TestParseScriptQuoteLiteral(t *testing.T) {
	q, err := parser.ParseScript("(dup *) -> sq  3 sq .", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(q.Nodes()))
	}
}

func TestParseScriptVectorLiteral(t *testing.T) {
	q, err := parser.ParseScript("[1, 2, 3] (dup *) vector:map .", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(q.Nodes()))
	}
}

func TestParseUnterminatedVectorRaisesSyntax(t *testing.T) {
	if _, err := parser.ParseScript("[1, 2", 1); err == nil {
		t.Fatal("expected a syntax error for an unterminated vector")
	}
}

func TestParseStringEscapes(t *testing.T) {
	q, err := parser.ParseScript(`"a\tb!"`, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 1 {
		t.Fatalf("expected 1 node, got %d", len(q.Nodes()))
	}
}

func TestParseUnterminatedStringRaisesSyntax(t *testing.T) {
	if _, err := parser.ParseScript(`"abc`, 1); err == nil {
		t.Fatal("expected a syntax error for an unterminated string")
	}
}

func TestParseRecordLiteral(t *testing.T) {
	q, err := parser.ParseScript(`{"a": 1, "b": 2}`, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Nodes()) != 1 {
		t.Fatalf("expected 1 node, got %d", len(q.Nodes()))
	}
}

func TestBracketBalanceIgnoresBracketsInStrings(t *testing.T) {
	depth, inString := parser.BracketBalance(`(foo "(" bar)`)
	if depth != 0 || inString {
		t.Fatalf("got depth=%d inString=%v", depth, inString)
	}
}

func TestBracketBalanceOpenQuote(t *testing.T) {
	if parser.IsBalanced(`(foo`) {
		t.Fatal("expected an unbalanced open paren")
	}
}

func TestBracketBalanceIgnoresCommentBrackets(t *testing.T) {
	if !parser.IsBalanced("foo # ( not real") {
		t.Fatal("bracket inside a comment should not count")
	}
}
