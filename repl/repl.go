/*
Package repl implements the interactive Read-Eval-Print Loop for the
lenguaje de programación Platzi interpreter.

The loop uses readline for line editing and history navigation and fatih/color
to distinguish banner text, results, and diagnostics, following the same
color-per-concern convention the pack's reference REPL uses. A single
*object.Environment persists for the whole session so a `variable` bound on
one line is visible — and, through closures, mutable — on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/jdaroesti/lpp-go/evaluator"
	"github.com/jdaroesti/lpp-go/lexer"
	"github.com/jdaroesti/lpp-go/object"
	"github.com/jdaroesti/lpp-go/parser"
)

// exitSentinel is checked against the raw input line, before lexing, so it
// never has to be a reserved word in the language's own grammar.
const exitSentinel = "salir()"

const prompt = ">> "

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
)

const banner = `
 _
| |_ __  _ __
| | '_ \| '_ \
| | |_) | |_) |
|_| .__/| .__/
  |_|   |_|
`

// PrintBanner writes the startup banner to w.
func PrintBanner(w io.Writer) {
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, "Bienvenido al lenguaje de programación Platzi (lpp)")
	blueColor.Fprintf(w, "Escribe '%s' para salir\n\n", exitSentinel)
}

// Start runs the REPL until the user types the exit sentinel or sends EOF
// (Ctrl+D). One environment is shared across every line read.
func Start(w io.Writer) error {
	PrintBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			greenColor.Fprintln(w, "¡Hasta pronto!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitSentinel {
			greenColor.Fprintln(w, "¡Hasta pronto!")
			return nil
		}

		rl.SaveHistory(line)
		evalLine(w, line, env)
	}
}

func evalLine(w io.Writer, line string, env *object.Environment) {
	l := lexer.New(line)
	p := parser.New(l)

	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintln(w, msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(w, result.Inspect())
		return
	}

	yellowColor.Fprintln(w, result.Inspect())
}
