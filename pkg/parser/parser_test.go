package parser

import (
	"testing"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/pkg/lexer"
)

func parseSource(t *testing.T, input string) ast.Expr {
	t.Helper()
	l := lexer.New("test", input)
	p := New(l, "test")
	expr, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return expr
}

func testIntegerLiteral(t *testing.T, e ast.Expr, value int64) bool {
	t.Helper()
	il, ok := e.(*ast.IntLiteral)
	if !ok {
		t.Errorf("e not *ast.IntLiteral. got=%T", e)
		return false
	}
	if il.Value != value {
		t.Errorf("il.Value not %d. got=%d", value, il.Value)
		return false
	}
	return true
}

func testIdentifier(t *testing.T, e ast.Expr, name string) bool {
	t.Helper()
	id, ok := e.(*ast.Identifier)
	if !ok {
		t.Errorf("e not *ast.Identifier. got=%T", e)
		return false
	}
	if id.Name != name {
		t.Errorf("id.Name not %s. got=%s", name, id.Name)
		return false
	}
	return true
}

func testBooleanLiteral(t *testing.T, e ast.Expr, value bool) bool {
	t.Helper()
	b, ok := e.(*ast.BoolLiteral)
	if !ok {
		t.Errorf("e not *ast.BoolLiteral. got=%T", e)
		return false
	}
	if b.Value != value {
		t.Errorf("b.Value not %t. got=%t", value, b.Value)
		return false
	}
	return true
}

func TestIntegerLiteralExpression(t *testing.T) {
	testIntegerLiteral(t, parseSource(t, "5"), 5)
}

func TestIdentifierExpression(t *testing.T) {
	testIdentifier(t, parseSource(t, "foobar"), "foobar")
}

func TestBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
	}
	for _, tt := range tests {
		testBooleanLiteral(t, parseSource(t, tt.input), tt.expected)
	}
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator ast.UnaryOp
		value    interface{}
	}{
		{"!true", ast.OpNot, true},
		{"!false", ast.OpNot, false},
		{"-15", ast.OpNeg, int64(15)},
		{"-20", ast.OpNeg, int64(20)},
	}

	for _, tt := range tests {
		expr := parseSource(t, tt.input)
		u, ok := expr.(*ast.Unary)
		if !ok {
			t.Fatalf("expr not *ast.Unary. got=%T", expr)
		}
		if u.Op != tt.operator {
			t.Fatalf("u.Op is not %v. got=%v", tt.operator, u.Op)
		}
		switch v := tt.value.(type) {
		case int64:
			testIntegerLiteral(t, u.Operand, v)
		case bool:
			testBooleanLiteral(t, u.Operand, v)
		}
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		input string
		left  int64
		op    ast.BinaryOp
		right int64
	}{
		{"5 + 5", 5, ast.OpAdd, 5},
		{"5 - 5", 5, ast.OpSub, 5},
		{"5 * 5", 5, ast.OpMul, 5},
		{"5 / 5", 5, ast.OpDiv, 5},
		{"5 % 5", 5, ast.OpMod, 5},
		{"5 > 5", 5, ast.OpGreater, 5},
		{"5 < 5", 5, ast.OpLess, 5},
		{"5 >= 5", 5, ast.OpGreaterEq, 5},
		{"5 <= 5", 5, ast.OpLessEq, 5},
		{"5 == 5", 5, ast.OpEq, 5},
		{"5 != 5", 5, ast.OpNotEq, 5},
	}

	for _, tt := range tests {
		expr := parseSource(t, tt.input)
		b, ok := expr.(*ast.Binary)
		if !ok {
			t.Fatalf("%q: expr not *ast.Binary. got=%T", tt.input, expr)
		}
		testIntegerLiteral(t, b.Left, tt.left)
		if b.Op != tt.op {
			t.Fatalf("%q: b.Op is not %v. got=%v", tt.input, tt.op, b.Op)
		}
		testIntegerLiteral(t, b.Right, tt.right)
	}
}

func TestLogicalOperatorsAndPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a && b || c", "((a && b) || c)"},
		{"a || b && c", "(a || (b && c))"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 < 2 == true", "((1 < 2) == true)"},
		{"-1 + 2", "((-1) + 2)"},
		{"!a == b", "((!a) == b)"},
	}

	for _, tt := range tests {
		expr := parseSource(t, tt.input)
		if got := astString(expr); got != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// astString renders an expression tree in fully-parenthesized form so
// precedence tests can assert on shape without hand-walking the tree.
func astString(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return itoa(n.Value)
	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.Identifier:
		return n.Name
	case *ast.Unary:
		sym := "!"
		if n.Op == ast.OpNeg {
			sym = "-"
		}
		return "(" + sym + astString(n.Operand) + ")"
	case *ast.Binary:
		return "(" + astString(n.Left) + " " + binSym(n.Op) + " " + astString(n.Right) + ")"
	default:
		return "?"
	}
}

func binSym(op ast.BinaryOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	case ast.OpMod:
		return "%"
	case ast.OpEq:
		return "=="
	case ast.OpNotEq:
		return "!="
	case ast.OpLess:
		return "<"
	case ast.OpLessEq:
		return "<="
	case ast.OpGreater:
		return ">"
	case ast.OpGreaterEq:
		return ">="
	case ast.OpAnd:
		return "&&"
	case ast.OpOr:
		return "||"
	default:
		return "?"
	}
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestArrayLiteral(t *testing.T) {
	expr := parseSource(t, "[1 2 3]")
	arr, ok := expr.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expr not *ast.ArrayLiteral. got=%T", expr)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	testIntegerLiteral(t, arr.Elements[0], 1)
	testIntegerLiteral(t, arr.Elements[2], 3)
}

func TestArrayLiteralCommaSeparated(t *testing.T) {
	expr := parseSource(t, "[1, 2, 3]")
	arr, ok := expr.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("expr not *ast.ArrayLiteral. got=%T", expr)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
}

func TestObjectLiteral(t *testing.T) {
	expr := parseSource(t, "{ a = 1; b = 2 }")
	obj, ok := expr.(*ast.ObjectLiteral)
	if !ok {
		t.Fatalf("expr not *ast.ObjectLiteral. got=%T", expr)
	}
	if len(obj.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(obj.Entries))
	}
	if obj.Entries[0].Key != "a" || obj.Entries[1].Key != "b" {
		t.Fatalf("unexpected keys: %+v", obj.Entries)
	}
}

func TestObjectLiteralRejectsColon(t *testing.T) {
	l := lexer.New("test", "{ a: 1 }")
	p := New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error for ':' in object literal, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err not *parser.Error. got=%T", err)
	}
	if perr.Kind != UnexpectedColonInObjectKV {
		t.Fatalf("expected UnexpectedColonInObjectKV, got %v", perr.Kind)
	}
}

func TestLetIn(t *testing.T) {
	expr := parseSource(t, "let x = 1; y = 2 in x + y")
	let, ok := expr.(*ast.LetIn)
	if !ok {
		t.Fatalf("expr not *ast.LetIn. got=%T", expr)
	}
	if len(let.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(let.Bindings))
	}
	if let.Bindings[0].Name != "x" || let.Bindings[1].Name != "y" {
		t.Fatalf("unexpected binding names: %+v", let.Bindings)
	}
	body, ok := let.Body.(*ast.Binary)
	if !ok {
		t.Fatalf("body not *ast.Binary. got=%T", let.Body)
	}
	if body.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %v", body.Op)
	}
}

func TestLetRequiresAtLeastOneBinding(t *testing.T) {
	l := lexer.New("test", "let in 1")
	p := New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err not *parser.Error. got=%T", err)
	}
	if perr.Kind != NoIdentifierAfterLet {
		t.Fatalf("expected NoIdentifierAfterLet, got %v", perr.Kind)
	}
}

func TestFunctionLiteral(t *testing.T) {
	expr := parseSource(t, "(x y) { x + y }")
	fn, ok := expr.(*ast.FnDecl)
	if !ok {
		t.Fatalf("expr not *ast.FnDecl. got=%T", expr)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "x" || fn.Params[1] != "y" {
		t.Fatalf("unexpected params: %v", fn.Params)
	}
}

func TestNullaryFunctionLiteral(t *testing.T) {
	expr := parseSource(t, "() { 42 }")
	fn, ok := expr.(*ast.FnDecl)
	if !ok {
		t.Fatalf("expr not *ast.FnDecl. got=%T", expr)
	}
	if len(fn.Params) != 0 {
		t.Fatalf("expected 0 params, got %d", len(fn.Params))
	}
}

func TestGroupedExpressionNotMistakenForFnDecl(t *testing.T) {
	expr := parseSource(t, "(1 + 2)")
	b, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expr not *ast.Binary. got=%T", expr)
	}
	if b.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %v", b.Op)
	}
}

func TestCallExpression(t *testing.T) {
	expr := parseSource(t, "add(1, 2 * 3, 4 + 5)")
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr not *ast.Call. got=%T", expr)
	}
	testIdentifier(t, call.Callee, "add")
	if len(call.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(call.Args))
	}
	testIntegerLiteral(t, call.Args[0], 1)
}

func TestImmediatelyInvokedFunctionLiteral(t *testing.T) {
	expr := parseSource(t, "(x) { x }(5)")
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("expr not *ast.Call. got=%T", expr)
	}
	if _, ok := call.Callee.(*ast.FnDecl); !ok {
		t.Fatalf("call.Callee not *ast.FnDecl. got=%T", call.Callee)
	}
}

func TestArrayIndexing(t *testing.T) {
	expr := parseSource(t, "arr[0]")
	idx, ok := expr.(*ast.ArrayIndex)
	if !ok {
		t.Fatalf("expr not *ast.ArrayIndex. got=%T", expr)
	}
	testIdentifier(t, idx.Base, "arr")
	testIntegerLiteral(t, idx.Index, 0)
}

func TestNegativeLiteralArrayIndexIsRejected(t *testing.T) {
	l := lexer.New("test", "arr[-1]")
	p := New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error for arr[-1], got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err not *parser.Error. got=%T", err)
	}
	if perr.Kind != NegativeArrayIndex {
		t.Fatalf("expected NegativeArrayIndex, got %v", perr.Kind)
	}
}

func TestDynamicNegativeIndexParsesFine(t *testing.T) {
	// "arr[x]" where x might evaluate negative at runtime is not a parse
	// error; only a literal negative index is syntactically rejectable.
	expr := parseSource(t, "arr[x]")
	idx, ok := expr.(*ast.ArrayIndex)
	if !ok {
		t.Fatalf("expr not *ast.ArrayIndex. got=%T", expr)
	}
	testIdentifier(t, idx.Index, "x")
}

func TestObjectFieldAccess(t *testing.T) {
	expr := parseSource(t, "obj.field")
	acc, ok := expr.(*ast.ObjectAccess)
	if !ok {
		t.Fatalf("expr not *ast.ObjectAccess. got=%T", expr)
	}
	testIdentifier(t, acc.Base, "obj")
	if acc.Field != "field" {
		t.Fatalf("expected field %q, got %q", "field", acc.Field)
	}
}

func TestChainedPostfix(t *testing.T) {
	expr := parseSource(t, "obj.list[0].name")
	acc, ok := expr.(*ast.ObjectAccess)
	if !ok {
		t.Fatalf("expr not *ast.ObjectAccess. got=%T", expr)
	}
	if acc.Field != "name" {
		t.Fatalf("expected field %q, got %q", "name", acc.Field)
	}
	idx, ok := acc.Base.(*ast.ArrayIndex)
	if !ok {
		t.Fatalf("acc.Base not *ast.ArrayIndex. got=%T", acc.Base)
	}
	testIntegerLiteral(t, idx.Index, 0)
}

func TestStringInterpolation(t *testing.T) {
	expr := parseSource(t, `"hi ${name}!"`)
	s, ok := expr.(*ast.InterpolatedString)
	if !ok {
		t.Fatalf("expr not *ast.InterpolatedString. got=%T", expr)
	}
	if len(s.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d: %+v", len(s.Parts), s.Parts)
	}
	if !s.Parts[0].IsLiteral || s.Parts[0].Literal != "hi " {
		t.Fatalf("unexpected first part: %+v", s.Parts[0])
	}
	testIdentifier(t, s.Parts[1].Expr, "name")
	if !s.Parts[2].IsLiteral || s.Parts[2].Literal != "!" {
		t.Fatalf("unexpected third part: %+v", s.Parts[2])
	}
}

func TestStringInterpolationWithExpression(t *testing.T) {
	expr := parseSource(t, `"total: ${1 + 2}"`)
	s, ok := expr.(*ast.InterpolatedString)
	if !ok {
		t.Fatalf("expr not *ast.InterpolatedString. got=%T", expr)
	}
	if len(s.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(s.Parts))
	}
	b, ok := s.Parts[1].Expr.(*ast.Binary)
	if !ok {
		t.Fatalf("second part not *ast.Binary. got=%T", s.Parts[1].Expr)
	}
	if b.Op != ast.OpAdd {
		t.Fatalf("expected OpAdd, got %v", b.Op)
	}
}

func TestPathLiteral(t *testing.T) {
	expr := parseSource(t, "./relative/path")
	p, ok := expr.(*ast.PathLiteral)
	if !ok {
		t.Fatalf("expr not *ast.PathLiteral. got=%T", expr)
	}
	if p.Value != "./relative/path" {
		t.Fatalf("unexpected path value %q", p.Value)
	}
}

func TestUnexpectedTrailingTokenIsError(t *testing.T) {
	l := lexer.New("test", "1 2")
	p := New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error for trailing token, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err not *parser.Error. got=%T", err)
	}
	if perr.Kind != UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", perr.Kind)
	}
}

func TestEmptyInputIsError(t *testing.T) {
	l := lexer.New("test", "")
	p := New(l, "test")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected error for empty input, got nil")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err not *parser.Error. got=%T", err)
	}
	if perr.Kind != NoTokensLeft {
		t.Fatalf("expected NoTokensLeft, got %v", perr.Kind)
	}
}
