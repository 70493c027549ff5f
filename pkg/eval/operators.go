package eval

import (
	"math"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/value"
)

// evalUnary evaluates `!` and unary `-`. Unlike a strict-boolean language,
// `!` negates the operand's truthiness rather than requiring a Bool operand.
func (e *Evaluator) evalUnary(n *ast.Unary, env value.Environment) (value.Value, error) {
	operand, err := e.evalExpr(n.Operand, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpNot:
		return value.Bool(!value.Truthy(operand)), nil

	case ast.OpNeg:
		switch v := operand.(type) {
		case value.Int:
			return value.Int(saturatingNeg(int64(v))), nil
		case value.Float:
			return value.Float(-v), nil
		default:
			return nil, e.errorf(TypeMismatch, n.Operand.Span(), "",
				"unary '-' requires a numeric operand, got %v", operand.Type())
		}

	default:
		return nil, e.errorf(TypeMismatch, n.Span(), "", "unknown unary operator")
	}
}

// evalBinary evaluates binary operators. && and || short-circuit on operand
// truthiness and are handled before either side is necessarily evaluated;
// every other operator evaluates both sides strictly, left to right.
func (e *Evaluator) evalBinary(n *ast.Binary, env value.Environment) (value.Value, error) {
	switch n.Op {
	case ast.OpAnd:
		return e.evalAnd(n, env)
	case ast.OpOr:
		return e.evalOr(n, env)
	}

	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.OpAdd:
		return e.evalAdd(n, left, right)
	case ast.OpSub:
		return e.evalSub(n, left, right)
	case ast.OpMul:
		return e.evalMul(n, left, right)
	case ast.OpDiv:
		return e.evalDiv(n, left, right)
	case ast.OpMod:
		return e.evalMod(n, left, right)
	case ast.OpEq:
		return value.Bool(valuesEqual(left, right)), nil
	case ast.OpNotEq:
		return value.Bool(!valuesEqual(left, right)), nil
	case ast.OpLess:
		return e.evalLess(n, left, right)
	case ast.OpLessEq:
		return e.evalLessEq(n, left, right)
	case ast.OpGreater:
		return e.evalGreater(n, left, right)
	case ast.OpGreaterEq:
		return e.evalGreaterEq(n, left, right)
	default:
		return nil, e.errorf(TypeMismatch, n.Span(), "", "unknown binary operator")
	}
}

func (e *Evaluator) evalAnd(n *ast.Binary, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	if !value.Truthy(left) {
		return value.Bool(false), nil
	}
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	return value.Bool(value.Truthy(right)), nil
}

func (e *Evaluator) evalOr(n *ast.Binary, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(left) {
		return value.Bool(true), nil
	}
	right, err := e.evalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	return value.Bool(value.Truthy(right)), nil
}

// evalAdd implements `+`: Int+Int saturates, any Float operand promotes
// both to Float, String+String concatenates. No other combination is valid.
func (e *Evaluator) evalAdd(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(saturatingAdd(int64(l), int64(r))), nil
		case value.Float:
			return value.Float(float64(l) + float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) + float64(r)), nil
		case value.Float:
			return value.Float(l + r), nil
		}
	case value.String:
		if r, ok := right.(value.String); ok {
			return value.String(string(l) + string(r)), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot add %v and %v", left.Type(), right.Type())
}

func (e *Evaluator) evalSub(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(saturatingSub(int64(l), int64(r))), nil
		case value.Float:
			return value.Float(float64(l) - float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) - float64(r)), nil
		case value.Float:
			return value.Float(l - r), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot subtract %v from %v", right.Type(), left.Type())
}

func (e *Evaluator) evalMul(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Int(saturatingMul(int64(l), int64(r))), nil
		case value.Float:
			return value.Float(float64(l) * float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) * float64(r)), nil
		case value.Float:
			return value.Float(l * r), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot multiply %v by %v", left.Type(), right.Type())
}

// evalDiv implements `/`. Int/Int is truncating integer division (the
// language's `/` follows `+`'s promotion table: both-Int stays Int); a zero
// Int divisor is DivideByZero. Any Float operand promotes both sides to
// Float, where division by zero yields IEEE infinity/NaN rather than error.
func (e *Evaluator) evalDiv(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			if r == 0 {
				return nil, e.errorf(DivideByZero, n.Span(), "", "division by zero")
			}
			return value.Int(int64(l) / int64(r)), nil
		case value.Float:
			return value.Float(float64(l) / float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(float64(l) / float64(r)), nil
		case value.Float:
			return value.Float(l / r), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot divide %v by %v", left.Type(), right.Type())
}

// evalMod implements `%`, mirroring `/`'s promotion: Int%Int truncates (zero
// divisor is DivideByZero), any Float operand promotes both and uses
// math.Mod.
func (e *Evaluator) evalMod(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			if r == 0 {
				return nil, e.errorf(DivideByZero, n.Span(), "", "modulo by zero")
			}
			return value.Int(int64(l) % int64(r)), nil
		case value.Float:
			return value.Float(math.Mod(float64(l), float64(r))), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Float(math.Mod(float64(l), float64(r))), nil
		case value.Float:
			return value.Float(math.Mod(float64(l), float64(r))), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot compute %v %% %v", left.Type(), right.Type())
}

// valuesEqual implements structural equality within a kind, with the one
// cross-kind exception the value model grants: Int and Float compare equal
// by promoting both to float64. Every other cross-kind pair is unequal.
func valuesEqual(left, right value.Value) bool {
	if li, ok := left.(value.Int); ok {
		if ri, ok := right.(value.Int); ok {
			return li == ri
		}
		if rf, ok := right.(value.Float); ok {
			return float64(li) == float64(rf)
		}
		return false
	}
	if lf, ok := left.(value.Float); ok {
		if rf, ok := right.(value.Float); ok {
			return lf == rf
		}
		if ri, ok := right.(value.Int); ok {
			return float64(lf) == float64(ri)
		}
		return false
	}
	return left.Equals(right)
}

// evalLess implements `<`: numeric on Int/Float (promoted), lexicographic on
// String, TypeMismatch otherwise.
func (e *Evaluator) evalLess(n *ast.Binary, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Int:
		switch r := right.(type) {
		case value.Int:
			return value.Bool(l < r), nil
		case value.Float:
			return value.Bool(float64(l) < float64(r)), nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Int:
			return value.Bool(float64(l) < float64(r)), nil
		case value.Float:
			return value.Bool(l < r), nil
		}
	case value.String:
		if r, ok := right.(value.String); ok {
			return value.Bool(l < r), nil
		}
	}
	return nil, e.errorf(TypeMismatch, n.Span(), "",
		"cannot compare %v with %v", left.Type(), right.Type())
}

func (e *Evaluator) evalGreater(n *ast.Binary, left, right value.Value) (value.Value, error) {
	return e.evalLess(n, right, left)
}

func (e *Evaluator) evalLessEq(n *ast.Binary, left, right value.Value) (value.Value, error) {
	less, err := e.evalLess(n, left, right)
	if err != nil {
		return nil, err
	}
	if bool(less.(value.Bool)) {
		return value.Bool(true), nil
	}
	return value.Bool(valuesEqual(left, right)), nil
}

func (e *Evaluator) evalGreaterEq(n *ast.Binary, left, right value.Value) (value.Value, error) {
	greater, err := e.evalGreater(n, left, right)
	if err != nil {
		return nil, err
	}
	if bool(greater.(value.Bool)) {
		return value.Bool(true), nil
	}
	return value.Bool(valuesEqual(left, right)), nil
}

// saturatingAdd, saturatingSub, and saturatingMul clamp int64 arithmetic to
// [math.MinInt64, math.MaxInt64] instead of wrapping on overflow.
func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

func saturatingSub(a, b int64) int64 {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		if b < 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return diff
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	result := a * b
	overflow := result/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64)
	if overflow {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return result
}

func saturatingNeg(a int64) int64 {
	if a == math.MinInt64 {
		return math.MaxInt64
	}
	return -a
}
