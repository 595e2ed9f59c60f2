package object

import "fmt"

// Builtins is the process-wide, read-only registry of host-implemented
// functions callable from user code. New entries are added here only;
// the evaluator requires no change to dispatch them, since Call treats
// a *Builtin exactly like a user-defined Function modulo the
// environment it runs in.
var Builtins = map[string]*Builtin{
	"size": {Fn: builtinSize},
}

// builtinSize implements size(x): the character count of a String
// argument. Any other arity or argument type produces an Error per
// spec.md §4.4, using the exact message templates the test suite
// checks against.
func builtinSize(args ...Object) Object {
	if len(args) != 1 {
		return &Error{Message: fmt.Sprintf("Wrong number of arguments. %d received, 1 expected", len(args))}
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len([]rune(arg.Value)))}
	default:
		return &Error{Message: fmt.Sprintf("Argument of type '%s' is not supported", args[0].Type())}
	}
}
