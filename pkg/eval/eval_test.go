package eval

import (
	"testing"

	"github.com/glint-lang/glint/internal/value"
	"github.com/glint-lang/glint/pkg/lexer"
	"github.com/glint-lang/glint/pkg/parser"
	"github.com/go-test/deep"
)

func testEval(t *testing.T, input string) (value.Value, error) {
	t.Helper()
	l := lexer.New("test", input)
	p := parser.New(l, "test")
	expr, err := p.Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	e := New(".", "test")
	return e.Eval(expr)
}

func testInt(t *testing.T, v value.Value, err error, expected int64) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := v.(value.Int)
	if !ok {
		t.Fatalf("expected Int, got %T (%+v)", v, v)
	}
	if int64(i) != expected {
		t.Errorf("got %d, want %d", i, expected)
	}
}

func testFloat(t *testing.T, v value.Value, err error, expected float64) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := v.(value.Float)
	if !ok {
		t.Fatalf("expected Float, got %T (%+v)", v, v)
	}
	if float64(f) != expected {
		t.Errorf("got %v, want %v", f, expected)
	}
}

func testBool(t *testing.T, v value.Value, err error, expected bool) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := v.(value.Bool)
	if !ok {
		t.Fatalf("expected Bool, got %T (%+v)", v, v)
	}
	if bool(b) != expected {
		t.Errorf("got %t, want %t", b, expected)
	}
}

func testString(t *testing.T, v value.Value, err error, expected string) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := v.(value.String)
	if !ok {
		t.Fatalf("expected String, got %T (%+v)", v, v)
	}
	if string(s) != expected {
		t.Errorf("got %q, want %q", s, expected)
	}
}

func testErrorKind(t *testing.T, err error, expected ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	evalErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *eval.Error, got %T (%v)", err, err)
	}
	if evalErr.Kind != expected {
		t.Errorf("got error kind %v, want %v", evalErr.Kind, expected)
	}
}

func TestEvalIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"-5", -5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"7 / 2", 3},
		{"7 % 2", 1},
		{"-7 / 2", -3},
		{"2 * (5 + 10)", 30},
	}
	for _, tt := range tests {
		v, err := testEval(t, tt.input)
		testInt(t, v, err, tt.expected)
	}
}

func TestEvalFloatPromotion(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1 + 1.5", 2.5},
		{"7 / 2.0", 3.5},
		{"7.5 % 2", 1.5},
	}
	for _, tt := range tests {
		v, err := testEval(t, tt.input)
		testFloat(t, v, err, tt.expected)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	_, err := testEval(t, "1 / 0")
	testErrorKind(t, err, DivideByZero)
}

func TestEvalSaturatingAdd(t *testing.T) {
	v, err := testEval(t, "9223372036854775807 + 1")
	testInt(t, v, err, 9223372036854775807)
}

func TestEvalSaturatingSub(t *testing.T) {
	v, err := testEval(t, "-9223372036854775807 - 1 - 1")
	testInt(t, v, err, -9223372036854775808)
}

func TestEvalTruthinessOfNegativeAndZero(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!0", true},
		{"!(-5)", true},
		{"!5", false},
		{"!\"\"", true},
		{"!\"hello\"", false},
	}
	for _, tt := range tests {
		v, err := testEval(t, tt.input)
		testBool(t, v, err, tt.expected)
	}
}

func TestEvalLogicalOperatorsOperateOnTruthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"5 && 0", false},
		{"5 && 1", true},
		{"0 || 0", false},
		{"0 || 1", true},
	}
	for _, tt := range tests {
		v, err := testEval(t, tt.input)
		testBool(t, v, err, tt.expected)
	}
}

func TestEvalShortCircuit(t *testing.T) {
	v, err := testEval(t, "if(0 > 1, 1 / 0, 42)")
	testInt(t, v, err, 42)
}

func TestEvalIntFloatEquality(t *testing.T) {
	v, err := testEval(t, "1 == 1.0")
	testBool(t, v, err, true)
}

func TestEvalStringEquality(t *testing.T) {
	v, err := testEval(t, "\"a\" == \"a\"")
	testBool(t, v, err, true)
}

func TestEvalStringComparison(t *testing.T) {
	v, err := testEval(t, "\"a\" < \"b\"")
	testBool(t, v, err, true)
}

func TestEvalStringConcat(t *testing.T) {
	v, err := testEval(t, "\"a\" + \"b\"")
	testString(t, v, err, "ab")
}

func TestEvalStringInterpolation(t *testing.T) {
	v, err := testEval(t, "\"a${1 + 1}b\"")
	testString(t, v, err, "a2b")
}

func TestEvalLetIn(t *testing.T) {
	v, err := testEval(t, "let x = 1; y = x + 1 in y")
	testInt(t, v, err, 2)
}

func TestEvalLetInBindingsDontSeeThemselves(t *testing.T) {
	_, err := testEval(t, "let x = x in x")
	testErrorKind(t, err, VariableDoesntExist)
}

func TestEvalFunctionLiteralAndCall(t *testing.T) {
	v, err := testEval(t, "let f = (x, y) { x + y } in f(2, 3)")
	testInt(t, v, err, 5)
}

func TestEvalArgsMismatch(t *testing.T) {
	_, err := testEval(t, "let f = (x) { x } in f(1, 2)")
	testErrorKind(t, err, ArgsMismatch)
}

func TestEvalNotCallable(t *testing.T) {
	_, err := testEval(t, "let x = 1 in x(2)")
	testErrorKind(t, err, NotCallable)
}

func TestEvalSelfBindingRecursion(t *testing.T) {
	v, err := testEval(t, "let fact = (n) { if(n <= 1, 1, n * fact(n - 1)) } in fact(5)")
	testInt(t, v, err, 120)
}

func TestEvalArrayIndexing(t *testing.T) {
	v, err := testEval(t, "[10 20 30][1]")
	testInt(t, v, err, 20)
}

func TestEvalArrayIndexOutOfBounds(t *testing.T) {
	_, err := testEval(t, "[1 2 3][5]")
	testErrorKind(t, err, IndexOutOfBounds)
}

func TestEvalObjectFieldAccess(t *testing.T) {
	v, err := testEval(t, "{ a = 1; b = 2 }.b")
	testInt(t, v, err, 2)
}

func TestEvalFieldDoesntExist(t *testing.T) {
	_, err := testEval(t, "{ a = 1 }.missing")
	testErrorKind(t, err, FieldDoesntExist)
}

func TestEvalVariableDoesntExist(t *testing.T) {
	_, err := testEval(t, "undefinedName")
	testErrorKind(t, err, VariableDoesntExist)
}

func TestEvalTypeOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"typeOf(null)", "null"},
		{"typeOf(true)", "bool"},
		{"typeOf(1)", "int"},
		{"typeOf(1.5)", "float"},
		{"typeOf(\"s\")", "string"},
		{"typeOf([1])", "array"},
		{"typeOf({ a = 1 })", "object"},
	}
	for _, tt := range tests {
		v, err := testEval(t, tt.input)
		testString(t, v, err, tt.expected)
	}
}

func TestEvalMaybe(t *testing.T) {
	v, err := testEval(t, "maybe(0, 42)")
	testInt(t, v, err, 42)

	v, err = testEval(t, "maybe(7, 42)")
	testInt(t, v, err, 7)
}

func TestEvalObjectKeysPreservesInsertionOrder(t *testing.T) {
	v, err := testEval(t, "objectKeys({ z = 1; a = 2 })")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := v.(*value.List)
	if !ok {
		t.Fatalf("expected Array, got %T", v)
	}
	want := value.NewList(value.String("z"), value.String("a"))
	if diff := deep.Equal(list.Elements(), want.Elements()); diff != nil {
		t.Errorf("objectKeys order mismatch: %v", diff)
	}
}

func TestEvalObjectValues(t *testing.T) {
	v, err := testEval(t, "objectValues({ a = 1; b = 2 })")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := v.(*value.List)
	if !ok {
		t.Fatalf("expected Array, got %T", v)
	}
	want := value.NewList(value.Int(1), value.Int(2))
	if diff := deep.Equal(list.Elements(), want.Elements()); diff != nil {
		t.Errorf("objectValues mismatch: %v", diff)
	}
}

func TestEvalObjectMergeRightWins(t *testing.T) {
	v, err := testEval(t, "objectMerge({ a = 1; b = 2 }, { b = 3; c = 4 })")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := v.(*value.Object)
	if !ok {
		t.Fatalf("expected Object, got %T", v)
	}
	want := map[string]int64{"a": 1, "b": 3, "c": 4}
	for k, exp := range want {
		got, ok := obj.Get(k)
		if !ok {
			t.Fatalf("missing key %q", k)
		}
		testInt(t, got, nil, exp)
	}
}

func TestEvalObjectGetMissingIsNull(t *testing.T) {
	v, err := testEval(t, "objectGet({ a = 1 }, \"missing\")")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.Null); !ok {
		t.Errorf("expected Null, got %T (%+v)", v, v)
	}
}

func TestEvalArrayUtilities(t *testing.T) {
	v, err := testEval(t, "length([1 2 3])")
	testInt(t, v, err, 3)

	v, err = testEval(t, "head([1 2 3])")
	testInt(t, v, err, 1)

	v, err = testEval(t, "length(tail([1 2 3]))")
	testInt(t, v, err, 2)

	v, err = testEval(t, "elem([1 2 3], 10)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(value.Null); !ok {
		t.Errorf("expected Null for out-of-range elem, got %T (%+v)", v, v)
	}
}

func TestEvalUnclosedStringPropagatesLexError(t *testing.T) {
	l := lexer.New("test", "\"unterminated")
	p := parser.New(l, "test")
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected lex error to propagate through parse")
	}
}

func TestEvalUnexpectedColonInObjectKV(t *testing.T) {
	l := lexer.New("test", "{ a : 1 }")
	p := parser.New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected UnexpectedColonInObjectKV")
	}
	perr, ok := err.(*parser.Error)
	if !ok || perr.Kind != parser.UnexpectedColonInObjectKV {
		t.Fatalf("expected UnexpectedColonInObjectKV, got %v", err)
	}
}
