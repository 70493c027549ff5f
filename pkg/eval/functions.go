package eval

import (
	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/value"
)

// evalCall dispatches a call expression to either a Closure or a Builtin.
// When the callee is a bare identifier resolving to a Closure, that name is
// additionally bound to the closure itself inside the call frame, so a
// closure can recurse under the name it was called through without needing
// a dedicated letrec construct.
func (e *Evaluator) evalCall(n *ast.Call, env value.Environment) (value.Value, error) {
	callee, err := e.evalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *value.Closure:
		if len(n.Args) != len(fn.Params) {
			return nil, e.errorf(ArgsMismatch, n.Span(), "",
				"closure expects %d argument(s), got %d", len(fn.Params), len(n.Args))
		}
		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := e.evalExpr(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}

		callEnv := fn.Env.Extend()
		if ident, ok := n.Callee.(*ast.Identifier); ok {
			callEnv.Set(ident.Name, fn)
		}
		for i, p := range fn.Params {
			callEnv.Set(p, args[i])
		}

		body, ok := fn.Body.(ast.Expr)
		if !ok {
			return nil, e.errorf(TypeMismatch, n.Span(), "", "closure body is not an expression")
		}
		return e.evalExpr(body, callEnv)

	case *value.Builtin:
		if len(n.Args) != fn.Arity {
			return nil, e.errorf(ArgsMismatch, n.Span(), "",
				"%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(n.Args))
		}

		if fn.Lazy != nil {
			call := value.CallArgs{
				Env:     env,
				NumArgs: len(n.Args),
				EvalArg: func(i int) (value.Value, error) {
					return e.evalExpr(n.Args[i], env)
				},
				RawArg: func(i int) interface{} {
					return n.Args[i]
				},
			}
			v, err := fn.Lazy(call)
			if err != nil {
				return nil, e.wrapBuiltinErr(n, err)
			}
			return v, nil
		}

		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := e.evalExpr(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		v, err := fn.Strict(args)
		if err != nil {
			return nil, e.wrapBuiltinErr(n, err)
		}
		return v, nil

	default:
		return nil, e.errorf(NotCallable, n.Callee.Span(), "", "%v is not callable", callee.Type())
	}
}

// wrapBuiltinErr attaches the call's span to a built-in's raw error, unless
// it's already a properly spanned *Error (e.g. from an import's own parse
// failure or from evaluating an argument expression). Arity is checked
// before a built-in runs, so a plain error surfacing here is always about
// an argument's value, not its count.
func (e *Evaluator) wrapBuiltinErr(n *ast.Call, err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return e.errorf(TypeMismatch, n.Span(), "", "%s", err.Error())
}

// evalArrayIndex implements `base[index]`. index must be an Int; negative
// indices are rejected (the `elem` built-in instead returns Null for a
// negative or out-of-range index).
func (e *Evaluator) evalArrayIndex(n *ast.ArrayIndex, env value.Environment) (value.Value, error) {
	base, err := e.evalExpr(n.Base, env)
	if err != nil {
		return nil, err
	}
	list, ok := base.(*value.List)
	if !ok {
		return nil, e.errorf(TypeMismatch, n.Base.Span(), "", "cannot index into %v", base.Type())
	}

	idxVal, err := e.evalExpr(n.Index, env)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return nil, e.errorf(TypeMismatch, n.Index.Span(), "", "array index must be an Int, got %v", idxVal.Type())
	}
	if idx < 0 {
		return nil, e.errorf(NegativeArrayIndex, n.Index.Span(), "", "array index %d is negative", idx)
	}
	if int64(idx) >= int64(list.Len()) {
		return nil, e.errorf(IndexOutOfBounds, n.Index.Span(), "",
			"array index %d out of bounds for length %d", idx, list.Len())
	}
	return list.Get(int(idx)), nil
}

// evalObjectAccess implements `base.field`.
func (e *Evaluator) evalObjectAccess(n *ast.ObjectAccess, env value.Environment) (value.Value, error) {
	base, err := e.evalExpr(n.Base, env)
	if err != nil {
		return nil, err
	}
	obj, ok := base.(*value.Object)
	if !ok {
		return nil, e.errorf(TypeMismatch, n.Base.Span(), "", "cannot access field on %v", base.Type())
	}
	v, ok := obj.Get(n.Field)
	if !ok {
		return nil, e.errorf(FieldDoesntExist, n.Span(), "", "object has no field %q", n.Field)
	}
	return v, nil
}
