// Command cantte is the entry point for the Cantte interpreter.
//
// Usage:
//
//	cantte                start the interactive REPL
//	cantte <path>         execute a Cantte source file
//	cantte --help         show usage
//	cantte --version      show version information
package main

import (
	"os"

	"github.com/akashmaji946/cantte/evaluator"
	"github.com/akashmaji946/cantte/lexer"
	"github.com/akashmaji946/cantte/object"
	"github.com/akashmaji946/cantte/parser"
	"github.com/akashmaji946/cantte/repl"
	"github.com/fatih/color"
)

const version = "v0.1.0"
const prompt = "cantte>> "

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			cyanColor.Println("Cantte " + version)
			return
		default:
			runFile(os.Args[1])
			return
		}
	}

	r := repl.New(version, prompt)
	if err := r.Start(os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	cyanColor.Println("Cantte - a small interpreted programming language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  cantte                Start the interactive REPL")
	yellowColor.Println("  cantte <path>          Execute a Cantte source file")
	yellowColor.Println("  cantte --help          Show this message")
	yellowColor.Println("  cantte --version       Show version information")
}

// runFile reads, parses, and evaluates a single source file, printing
// parse errors or the evaluated error/result and setting a non-zero
// exit code on failure.
func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(lexer.New(string(content)))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintln(os.Stderr, result.Inspect())
		os.Exit(1)
	}
	if result.Type() != object.NULL_OBJ {
		yellowColor.Println(result.Inspect())
	}
}
