package evaluator

import (
	"testing"

	"github.com/akashmaji946/cantte/lexer"
	"github.com/akashmaji946/cantte/object"
	"github.com/akashmaji946/cantte/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	env := object.NewEnvironment()
	return Eval(program, env)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"(2 + 7) / 3", 3},
		{"7 / 2", 3},
		{"-7 / 2", -3},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		integer, ok := evaluated.(*object.Integer)
		require.True(t, ok, "not an Integer for %q: %#v", tt.input, evaluated)
		assert.Equal(t, tt.expected, integer.Value, tt.input)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		boolean, ok := evaluated.(*object.Boolean)
		require.True(t, ok, "not a Boolean for %q", tt.input)
		assert.Equal(t, tt.expected, boolean.Value, tt.input)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		assert.Equal(t, tt.expected, evaluated.(*object.Boolean).Value, tt.input)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		if tt.expected == nil {
			assert.Equal(t, NULL, evaluated, tt.input)
			continue
		}
		integer := evaluated.(*object.Integer)
		assert.Equal(t, tt.expected, integer.Value, tt.input)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (20 > 10) { return 1; } return 0; }", 1},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		integer, ok := evaluated.(*object.Integer)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.expected, integer.Value, tt.input)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "Type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "Type mismatch: INTEGER + BOOLEAN"},
		{"-true;", "Unknown operator: -BOOLEAN"},
		{"true + false;", "Unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5;", "Unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "Unknown operator: BOOLEAN + BOOLEAN"},
		{
			`if (10 > 1) {
				if (10 > 1) {
					return true + false;
				}
				return 1;
			}`,
			"Unknown operator: BOOLEAN + BOOLEAN",
		},
		{"foobar;", "Unknown identifier: foobar"},
		{`"a" - "b";`, "Unknown operator: STRING - STRING"},
		{"5 / 0;", "Division by zero"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		errObj, ok := evaluated.(*object.Error)
		require.True(t, ok, "no error object for %q, got %#v", tt.input, evaluated)
		assert.Equal(t, tt.expected, errObj.Message, tt.input)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		assert.Equal(t, tt.expected, evaluated.(*object.Integer).Value, tt.input)
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval(t, "func(x) { x + 2; };")
	fn, ok := evaluated.(*object.Function)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].String())
	assert.Equal(t, "(x + 2)", fn.Body.String())
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = func(x) { x; }; identity(5);", 5},
		{"let identity = func(x) { return x; }; identity(5);", 5},
		{"let double = func(x) { x * 2; }; double(5);", 10},
		{"let add = func(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = func(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"func(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		assert.Equal(t, tt.expected, evaluated.(*object.Integer).Value, tt.input)
	}
}

func TestClosures(t *testing.T) {
	input := `
	let newAdder = func(x) {
		func(y) { x + y; };
	};
	let addTwo = newAdder(2);
	addTwo(2);`

	evaluated := testEval(t, input)
	assert.Equal(t, int64(4), evaluated.(*object.Integer).Value)
}

func TestClosureSeesLatestMutationOfCapturedEnv(t *testing.T) {
	input := `
	let x = 1;
	let readX = func() { x; };
	let y = x;
	let x = 5;
	readX();`

	evaluated := testEval(t, input)
	assert.Equal(t, int64(5), evaluated.(*object.Integer).Value)
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(t, `"Hello World!";`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(t, `"Hello," + " " + "world!";`)
	str, ok := evaluated.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", str.Value)
}

func TestStringComparison(t *testing.T) {
	assert.Equal(t, TRUE, testEval(t, `"abc" == "abc";`))
	assert.Equal(t, FALSE, testEval(t, `"abc" == "xyz";`))
	assert.Equal(t, TRUE, testEval(t, `"abc" != "xyz";`))
}

func TestBuiltinSize(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`size("");`, int64(0)},
		{`size("four");`, int64(4)},
		{`size("hello world");`, int64(11)},
		{`size(1);`, "Argument of type 'INTEGER' is not supported"},
		{`size("one", "two");`, "Wrong number of arguments. 2 received, 1 expected"},
	}

	for _, tt := range tests {
		evaluated := testEval(t, tt.input)
		switch expected := tt.expected.(type) {
		case int64:
			require.IsType(t, &object.Integer{}, evaluated, tt.input)
			assert.Equal(t, expected, evaluated.(*object.Integer).Value, tt.input)
		case string:
			require.IsType(t, &object.Error{}, evaluated, tt.input)
			assert.Equal(t, expected, evaluated.(*object.Error).Message, tt.input)
		}
	}
}

func TestErrorShortCircuitsFurtherEvaluation(t *testing.T) {
	input := `
	let calls = func() { return 1; };
	5 + true + calls();`
	evaluated := testEval(t, input)
	errObj, ok := evaluated.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "Type mismatch: INTEGER + BOOLEAN", errObj.Message)
}

func TestCallingNonFunction(t *testing.T) {
	evaluated := testEval(t, "let notAFunction = 5; notAFunction();")
	errObj, ok := evaluated.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "It's not a function: INTEGER", errObj.Message)
}

func TestFunctionArityMismatchBindsMissingParamsToNull(t *testing.T) {
	evaluated := testEval(t, "let add = func(x, y) { y; }; add(1);")
	assert.Equal(t, NULL, evaluated)
}
