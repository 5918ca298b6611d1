// Command lpp is the entry point for the lenguaje de programación Platzi
// interpreter. It supports three modes of operation:
//
//   - Interactive REPL mode (-i, or no arguments at all)
//   - Expression evaluation mode (-e "<source>")
//   - File evaluation mode (a single positional path argument)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jdaroesti/lpp-go/evaluator"
	"github.com/jdaroesti/lpp-go/lexer"
	"github.com/jdaroesti/lpp-go/object"
	"github.com/jdaroesti/lpp-go/parser"
	"github.com/jdaroesti/lpp-go/repl"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "modo REPL interactivo")
		expression  = flag.String("e", "", "evalúa una expresión dada")
	)
	flag.Parse()

	switch {
	case *expression != "":
		run(*expression)
	case *interactive:
		startREPL()
	case flag.NArg() > 0:
		runFile(flag.Arg(0))
	default:
		startREPL()
	}
}

func startREPL() {
	if err := repl.Start(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	run(string(source))
}

// run evaluates source against a fresh environment and prints either the
// result's inspection string or every diagnostic raised along the way,
// exiting with a non-zero status on any parse or runtime error.
func run(source string) {
	l := lexer.New(source)
	p := parser.New(l)

	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		os.Exit(1)
	}

	fmt.Println(result.Inspect())
}
