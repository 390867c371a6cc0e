package parser

import (
	"strconv"
	"strings"

	"github.com/laskin-lang/laskin/ast"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/value"
)

// Parser holds the scanning cursor for one parse session. It is not
// reused across sources.
type Parser struct {
	s *scanner
}

// New creates a parser over source text, read starting at startingLine
// (the REPL collaborator re-parses each accumulated buffer starting at
// the line it began on, so diagnostics stay anchored to the real file).
func New(source string, startingLine int) *Parser {
	s := newScanner(source)
	if startingLine > 0 {
		s.line = startingLine
	}
	return &Parser{s: s}
}

// ParseScript repeatedly parses statements until input is exhausted and
// returns a quote holding the node sequence.
func ParseScript(source string, startingLine int) (*value.Quote, error) {
	p := New(source, startingLine)
	var nodes []value.Executable
	for {
		p.s.skipSpaceAndComments()
		if p.s.atEnd() {
			break
		}
		n, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return value.NewUserQuote(nodes), nil
}

// ParseStatement parses one quote, vector, string, record, or symbol
// (possibly promoted to a definition).
func (p *Parser) ParseStatement() (value.Executable, error) {
	p.s.skipSpaceAndComments()
	if p.s.atEnd() {
		return nil, p.s.syntaxErrorf("unexpected end of input")
	}

	switch p.s.peek() {
	case '(':
		return p.parseQuoteLiteral()
	case '[':
		return p.parseVectorLiteral(p.ParseExpression)
	case '"', '\'':
		return p.parseStringLiteral()
	case '{':
		return p.parseRecordLiteral()
	}

	line, col := p.s.position()
	sym := p.s.readSymbol()
	if sym == "" {
		return nil, p.s.syntaxErrorf("unexpected character %q", p.s.peek())
	}
	if sym == "->" {
		p.s.skipSpaceAndComments()
		nameLine, nameCol := p.s.position()
		name := p.s.readSymbol()
		if name == "" {
			return nil, lerr.At(lerr.Syntax, nameLine, nameCol, "expected a name after ->")
		}
		return ast.NewDefinition(line, col, name), nil
	}
	return ast.NewSymbol(line, col, sym), nil
}

// ParseExpression parses a quote, vector, string, record, or bare symbol;
// a bare symbol is never promoted to a definition here.
func (p *Parser) ParseExpression() (value.Executable, error) {
	p.s.skipSpaceAndComments()
	if p.s.atEnd() {
		return nil, p.s.syntaxErrorf("unexpected end of input")
	}

	switch p.s.peek() {
	case '(':
		return p.parseQuoteLiteral()
	case '[':
		return p.parseVectorLiteral(p.ParseExpression)
	case '"', '\'':
		return p.parseStringLiteral()
	case '{':
		return p.parseRecordLiteral()
	}

	line, col := p.s.position()
	sym := p.s.readSymbol()
	if sym == "" {
		return nil, p.s.syntaxErrorf("unexpected character %q", p.s.peek())
	}
	return ast.NewSymbol(line, col, sym), nil
}

func (p *Parser) parseQuoteLiteral() (value.Executable, error) {
	line, col := p.s.position()
	p.s.advance() // consume '('
	var nodes []value.Executable
	for {
		p.s.skipSpaceAndComments()
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated quote literal: missing )")
		}
		if p.s.peek() == ')' {
			p.s.advance()
			break
		}
		n, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	q := value.NewUserQuote(nodes)
	return ast.NewLiteral(line, col, value.NewQuote(q)), nil
}

func (p *Parser) parseVectorLiteral(parseElem func() (value.Executable, error)) (value.Executable, error) {
	line, col := p.s.position()
	p.s.advance() // consume '['
	var children []value.Executable
	p.s.skipSpaceAndComments()
	if !p.s.atEnd() && p.s.peek() == ']' {
		p.s.advance()
		return ast.NewVectorLiteral(line, col, children), nil
	}
	for {
		p.s.skipSpaceAndComments()
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated vector literal: missing ]")
		}
		child, err := parseElem()
		if err != nil {
			return nil, err
		}
		children = append(children, child)

		p.s.skipSpaceAndComments()
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated vector literal: missing ]")
		}
		switch p.s.peek() {
		case ',':
			p.s.advance()
			continue
		case ']':
			p.s.advance()
			return ast.NewVectorLiteral(line, col, children), nil
		default:
			return nil, p.s.syntaxErrorf("expected , or ] in vector literal")
		}
	}
}

func (p *Parser) parseRecordLiteral() (value.Executable, error) {
	line, col := p.s.position()
	p.s.advance() // consume '{'
	var keys []string
	var children []value.Executable

	p.s.skipSpaceAndComments()
	if !p.s.atEnd() && p.s.peek() == '}' {
		p.s.advance()
		return ast.NewRecordLiteral(line, col, keys, children), nil
	}

	for {
		p.s.skipSpaceAndComments()
		if p.s.atEnd() || (p.s.peek() != '"' && p.s.peek() != '\'') {
			return nil, p.s.syntaxErrorf("expected a string key in record literal")
		}
		keyNode, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		keys = append(keys, keyNode.(*ast.Literal).Value.Text())

		p.s.skipSpaceAndComments()
		if p.s.atEnd() || p.s.peek() != ':' {
			return nil, p.s.syntaxErrorf("expected : after record key")
		}
		p.s.advance()

		child, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		children = append(children, child)

		p.s.skipSpaceAndComments()
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated record literal: missing }")
		}
		switch p.s.peek() {
		case ',':
			p.s.advance()
			continue
		case '}':
			p.s.advance()
			return ast.NewRecordLiteral(line, col, keys, children), nil
		default:
			return nil, p.s.syntaxErrorf("expected , or } in record literal")
		}
	}
}

func (p *Parser) parseStringLiteral() (value.Executable, error) {
	line, col := p.s.position()
	quote := p.s.advance() // consume opening quote
	var out strings.Builder
	for {
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated string literal")
		}
		r := p.s.advance()
		if r == quote {
			break
		}
		if r != '\\' {
			out.WriteRune(r)
			continue
		}
		if p.s.atEnd() {
			return nil, lerr.At(lerr.Syntax, line, col, "unterminated escape sequence")
		}
		esc := p.s.advance()
		switch esc {
		case 'b':
			out.WriteRune('\b')
		case 't':
			out.WriteRune('\t')
		case 'n':
			out.WriteRune('\n')
		case 'f':
			out.WriteRune('\f')
		case 'r':
			out.WriteRune('\r')
		case '"':
			out.WriteRune('"')
		case '\'':
			out.WriteRune('\'')
		case '\\':
			out.WriteRune('\\')
		case '/':
			out.WriteRune('/')
		case 'u':
			r, err := p.readUnicodeEscape()
			if err != nil {
				return nil, err
			}
			out.WriteRune(r)
		default:
			return nil, lerr.At(lerr.Syntax, line, col, "invalid escape sequence \\%c", esc)
		}
	}
	return ast.NewLiteral(line, col, value.NewString(out.String())), nil
}

func (p *Parser) readUnicodeEscape() (rune, error) {
	line, col := p.s.position()
	if p.s.pos+4 > len(p.s.src) {
		return 0, lerr.At(lerr.Syntax, line, col, "incomplete \\u escape")
	}
	var digits strings.Builder
	for i := 0; i < 4; i++ {
		digits.WriteRune(p.s.advance())
	}
	n, err := strconv.ParseInt(digits.String(), 16, 32)
	if err != nil {
		return 0, lerr.At(lerr.Syntax, line, col, "invalid \\u escape %q", digits.String())
	}
	return rune(n), nil
}
