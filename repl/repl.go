// Package repl implements the interactive Read-Eval-Print Loop for the
// Cantte interpreter. Each line is lexed and parsed fresh, but the
// Environment persists across prompts, so `let` bindings and function
// definitions made on one line are visible on the next — see
// SPEC_FULL.md §4 for why this resolution was chosen over the
// accumulated-buffer variant.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/cantte/evaluator"
	"github.com/akashmaji946/cantte/lexer"
	"github.com/akashmaji946/cantte/object"
	"github.com/akashmaji946/cantte/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// ExitCommand is the literal input that ends the REPL loop, per
// spec.md §6.
const ExitCommand = "exit()"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Banner is the greeting printed once at REPL startup.
const Banner = `
   ____              _   _
  / ___|__ _ _ __  _| |_| |_ ___
 | |   / _  |  _ \/ __| __| __/ _ \
 | |__| (_| | | | \__ \ |_| ||  __/
  \____\__,_|_| |_|___/\__|\__\___|
`

const line = "--------------------------------------------------------"

// Repl holds the static presentation configuration for an interactive
// session; Start runs the loop against a given I/O pair.
type Repl struct {
	Version string
	Prompt  string
}

// New creates a Repl with the given version banner and prompt string.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

// printBanner writes the startup banner and short usage reminder.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, Banner)
	blueColor.Fprintln(w, line)
	yellowColor.Fprintln(w, "Cantte "+r.Version)
	cyanColor.Fprintln(w, "Type Cantte code and press enter. Type 'exit()' to quit.")
	blueColor.Fprintln(w, line)
}

// Start runs the REPL main loop: print banner, read lines via
// readline (history, line editing), evaluate each against a
// long-lived Environment, and print the result or errors.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: w,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		input, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ExitCommand {
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		rl.SaveHistory(input)
		r.evalLine(w, input, env)
	}
}

// evalLine lexes and parses input fresh each time, printing any parse
// errors one per line; on a clean parse, it evaluates against env
// (which persists across calls) and prints the result's Inspect().
func (r *Repl) evalLine(w io.Writer, input string, env *object.Environment) {
	p := parser.New(lexer.New(input))
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
