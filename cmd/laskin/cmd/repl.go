package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/laskin-lang/laskin/cmd/laskin/config"
	"github.com/laskin-lang/laskin/engine"
	"github.com/laskin-lang/laskin/parser"
)

// REPL implements the bracket-balance-aware line reader: lines
// accumulate into a buffer until brackets (and quoted strings) balance,
// then the buffer is parsed and executed as one unit.
type REPL struct {
	ctx    *engine.Context
	reader *bufio.Reader
	buffer strings.Builder
	lineNo int
	styles config.Styles
}

// NewREPL builds a REPL around an already-constructed context.
func NewREPL(ctx *engine.Context) *REPL {
	var styles config.Styles
	if cfg, _ := config.Load(); cfg != nil {
		styles = config.GetStyles()
	}
	return &REPL{
		ctx:    ctx,
		reader: bufio.NewReader(os.Stdin),
		styles: styles,
	}
}

// Run drives the read-accumulate-execute loop until EOF or "quit".
func (r *REPL) Run() error {
	for {
		fmt.Fprint(os.Stdout, r.prompt())

		line, err := r.reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stdout)
				return nil
			}
			return err
		}

		// An all-whitespace line is ignored outright: no append, no
		// prompt advance.
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.buffer.WriteString(line)
		r.lineNo++

		if !parser.IsBalanced(r.buffer.String()) {
			continue
		}

		source := r.buffer.String()
		startLine := r.lineNo - strings.Count(source, "\n")
		r.buffer.Reset()

		if execErr := r.ctx.ExecuteSource(source, startLine, os.Stdout); execErr != nil {
			var quit *engine.QuitError
			if errors.As(execErr, &quit) {
				return nil
			}
			fmt.Fprintln(os.Stderr, r.styles.Error.Render(execErr.Error()))
		}
	}
}

// prompt renders "laskin:NNN:DD> ", switching the trailing character to
// "*" while a bracket or quoted string is still open.
func (r *REPL) prompt() string {
	marker := ">"
	if r.buffer.Len() > 0 {
		marker = "*"
	}
	text := fmt.Sprintf("laskin:%03d:%02d%s ", r.lineNo+1, r.ctx.Depth(), marker)
	return r.styles.Prompt.Render(text)
}
