// Package engine implements Context: the data stack, dictionary and
// built-in word tables that make Laskin runnable. Parsed nodes are driven
// through the value.Executable interface, so this is the single place
// that knows the concrete shapes of both the execution state and the
// word set operating on it.
package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	lerr "github.com/laskin-lang/laskin/errors"
	"github.com/laskin-lang/laskin/parser"
	"github.com/laskin-lang/laskin/value"
)

// Context holds the data stack, the dictionary and the I/O hooks used by
// every execution. It is not safe for concurrent use; one Context belongs
// to one logical caller at a time.
type Context struct {
	stack []value.Value
	dict  map[string]value.Value

	sink     io.Writer
	onOutput func(string)
	onError  func(error)

	sessionID    string
	trace        io.Writer
	includeDepth int
	stackPreview int
}

// NewContext builds a Context with every built-in word table installed. A
// session ID is minted up front so the CLI's --trace switch can tag which
// "include"-triggered sub-execution a trace line belongs to.
func NewContext() *Context {
	c := &Context{dict: make(map[string]value.Value), sessionID: uuid.NewString(), stackPreview: 10}
	registerAll(c)
	return c
}

// SetStackPreview changes how many top-of-stack values ".s" previews.
// Values below one are ignored.
func (c *Context) SetStackPreview(n int) {
	if n > 0 {
		c.stackPreview = n
	}
}

// SessionID returns the context's identifier, stable for its lifetime.
func (c *Context) SessionID() string { return c.sessionID }

// EnableTrace turns on per-word trace output to w; passing nil disables it.
func (c *Context) EnableTrace(w io.Writer) { c.trace = w }

// traceLine writes one "[session/depth] [stack] word" line when tracing
// is enabled.
func (c *Context) traceLine(word string) {
	if c.trace == nil {
		return
	}
	tag := c.sessionID[:8]
	if c.includeDepth > 0 {
		tag = fmt.Sprintf("%s/include:%d", tag, c.includeDepth)
	}
	parts := make([]string, len(c.stack))
	for i, v := range c.stack {
		parts[i] = v.ToString()
	}
	fmt.Fprintf(c.trace, "[%s] [%s] %s\n", tag, strings.Join(parts, ", "), word)
}

// SetOnOutput registers the output-written callback used by the viewer.
func (c *Context) SetOnOutput(f func(string)) { c.onOutput = f }

// SetOnError registers the error-raised callback used by the viewer.
func (c *Context) SetOnError(f func(error)) { c.onError = f }

// Push places v on top of the stack.
func (c *Context) Push(v value.Value) { c.stack = append(c.stack, v) }

// Pop removes and returns the top of the stack, raising Range on
// underflow.
func (c *Context) Pop() (value.Value, error) {
	if len(c.stack) == 0 {
		return value.Value{}, lerr.New(lerr.Range, "stack underflow")
	}
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return v, nil
}

// Peek returns the top of the stack without removing it.
func (c *Context) Peek() (value.Value, error) {
	if len(c.stack) == 0 {
		return value.Value{}, lerr.New(lerr.Range, "stack underflow")
	}
	return c.stack[len(c.stack)-1], nil
}

// Depth reports the current stack size.
func (c *Context) Depth() int { return len(c.stack) }

// Clear empties the stack.
func (c *Context) Clear() { c.stack = nil }

// Stack returns a read-only snapshot of the stack, bottom first.
func (c *Context) Stack() []value.Value {
	cp := make([]value.Value, len(c.stack))
	copy(cp, c.stack)
	return cp
}

// Dictionary returns a read-only snapshot of the dictionary.
func (c *Context) Dictionary() map[string]value.Value {
	cp := make(map[string]value.Value, len(c.dict))
	for k, v := range c.dict {
		cp[k] = v
	}
	return cp
}

// Write sends s to the active output sink and notifies the on-output
// hook, if any. The sink is never buffered or flushed here.
func (c *Context) Write(s string) {
	if c.sink != nil {
		io.WriteString(c.sink, s)
	}
	if c.onOutput != nil {
		c.onOutput(s)
	}
}

// Lookup probes the dictionary for an exact-string key.
func (c *Context) Lookup(key string) (value.Value, bool) {
	v, ok := c.dict[key]
	return v, ok
}

// Define binds key to v, replacing any previous binding.
func (c *Context) Define(key string, v value.Value) {
	c.dict[key] = v
}

// Execute runs a sequence of already-parsed nodes in order, stopping at
// the first error. It backs the value.Engine interface used by
// combinators built from raw node lists.
func (c *Context) Execute(nodes []value.Executable) error {
	for _, n := range nodes {
		c.traceLine(n.Source())
		if err := n.Execute(c); err != nil {
			return err
		}
	}
	return nil
}

// beginInclude/endInclude bracket an "include"-triggered sub-execution so
// traceLine can tag its lines as nested rather than top-level.
func (c *Context) beginInclude() { c.includeDepth++ }
func (c *Context) endInclude()   { c.includeDepth-- }

// ExecuteSource parses source starting at startingLine and runs it
// against this context, writing to sink. Any error is reported through
// the on-error hook before being returned to the caller.
func (c *Context) ExecuteSource(source string, startingLine int, sink io.Writer) error {
	c.sink = sink
	quote, err := parser.ParseScript(source, startingLine)
	if err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		return err
	}
	if err := c.Execute(quote.Nodes()); err != nil {
		if c.onError != nil {
			c.onError(err)
		}
		return err
	}
	return nil
}
