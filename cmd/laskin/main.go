// Command laskin is the CLI/REPL front-end around the language core: it
// turns os.Args and stdin into calls against engine.Context and reports
// errors to stderr, but implements no language semantics of its own.
package main

import "github.com/laskin-lang/laskin/cmd/laskin/cmd"

func main() {
	cmd.Execute()
}
