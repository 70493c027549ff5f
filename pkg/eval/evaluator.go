package eval

import (
	"fmt"
	"path/filepath"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/loader"
	"github.com/glint-lang/glint/internal/source"
	"github.com/glint-lang/glint/internal/value"
)

// Evaluator walks an expression tree and computes its runtime Value,
// implementing the language's scoping, closure, and built-in semantics.
type Evaluator struct {
	baseDir    string // directory relative paths are resolved against
	sourceName string // used to attribute errors to the source this Evaluator evaluates
	builtins   map[string]value.Value
	loader     *loader.Loader
}

// New creates an Evaluator for a top-level evaluation of source sourceName,
// resolving relative path literals against baseDir.
func New(baseDir, sourceName string) *Evaluator {
	return newEvaluator(baseDir, sourceName, loader.New())
}

// newEvaluator builds an Evaluator sharing l, so that imports performed from
// deep inside a tree of imports still share one parse cache.
func newEvaluator(baseDir, sourceName string, l *loader.Loader) *Evaluator {
	e := &Evaluator{
		baseDir:    baseDir,
		sourceName: sourceName,
		builtins:   make(map[string]value.Value),
		loader:     l,
	}
	e.registerBuiltins()
	return e
}

// Eval evaluates expr in a fresh environment seeded with the built-ins.
func (e *Evaluator) Eval(expr ast.Expr) (value.Value, error) {
	env := value.NewEnv()
	for name, b := range e.builtins {
		env.Set(name, b)
	}
	return e.evalExpr(expr, env)
}

// EvalWithEnv evaluates expr in an existing environment, used for function
// bodies and nested scopes that already carry bindings.
func (e *Evaluator) EvalWithEnv(expr ast.Expr, env value.Environment) (value.Value, error) {
	return e.evalExpr(expr, env)
}

func (e *Evaluator) errorf(kind ErrorKind, span source.Span, hint, format string, args ...interface{}) error {
	return &Error{
		Kind:       kind,
		Span:       span,
		SourceName: e.sourceName,
		Message:    fmt.Sprintf(format, args...),
		Hint:       hint,
	}
}

// errorfExpr is errorf with the span pulled from a raw ast.Expr, for
// built-ins that receive unevaluated argument expressions via
// value.CallArgs.RawArg (which returns interface{} to avoid a value<->ast
// import cycle).
func (e *Evaluator) errorfExpr(rawExpr interface{}, kind ErrorKind, format string, args ...interface{}) error {
	expr, ok := rawExpr.(ast.Expr)
	if !ok {
		return e.errorf(kind, source.Span{}, "", format, args...)
	}
	return e.errorf(kind, expr.Span(), "", format, args...)
}

// evalExpr is the central dispatch over every ast.Expr kind.
func (e *Evaluator) evalExpr(expr ast.Expr, env value.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return value.Int(n.Value), nil

	case *ast.FloatLiteral:
		return value.Float(n.Value), nil

	case *ast.BoolLiteral:
		return value.Bool(n.Value), nil

	case *ast.NullLiteral:
		return value.Null{}, nil

	case *ast.StringLiteral:
		return value.String(n.Value), nil

	case *ast.PathLiteral:
		return value.Path(e.resolvePath(n.Value)), nil

	case *ast.InterpolatedString:
		s, err := e.renderInterpParts(n.Parts, env)
		if err != nil {
			return nil, err
		}
		return value.String(s), nil

	case *ast.InterpolatedPath:
		s, err := e.renderInterpParts(n.Parts, env)
		if err != nil {
			return nil, err
		}
		return value.Path(e.resolvePath(s)), nil

	case *ast.Identifier:
		return e.evalIdent(n, env)

	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)

	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n, env)

	case *ast.Unary:
		return e.evalUnary(n, env)

	case *ast.Binary:
		return e.evalBinary(n, env)

	case *ast.ArrayIndex:
		return e.evalArrayIndex(n, env)

	case *ast.ObjectAccess:
		return e.evalObjectAccess(n, env)

	case *ast.FnDecl:
		return &value.Closure{Params: n.Params, Body: n.Body, Env: env}, nil

	case *ast.Call:
		return e.evalCall(n, env)

	case *ast.LetIn:
		return e.evalLetIn(n, env)

	default:
		return nil, fmt.Errorf("unknown expression type: %T", expr)
	}
}

// evalIdent resolves a variable reference by walking the environment chain.
func (e *Evaluator) evalIdent(n *ast.Identifier, env value.Environment) (value.Value, error) {
	if v, ok := env.Get(n.Name); ok {
		return v, nil
	}
	return nil, e.errorf(VariableDoesntExist, n.Span(), "", "undefined variable %q", n.Name)
}

// evalArrayLiteral evaluates every element eagerly, left to right.
func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewList(elems...), nil
}

// evalObjectLiteral evaluates each entry in source order into an ordered
// Object; later entries with a repeated key overwrite the value but keep the
// key's original iteration position.
func (e *Evaluator) evalObjectLiteral(n *ast.ObjectLiteral, env value.Environment) (value.Value, error) {
	obj := value.NewObject()
	for _, entry := range n.Entries {
		v, err := e.evalExpr(entry.Value, env)
		if err != nil {
			return nil, err
		}
		obj.Set(entry.Key, v)
	}
	return obj, nil
}

// renderInterpParts concatenates an interpolated string/path's parts,
// rendering each embedded expression through its display form (Value.String
// already implements the display-form rules per kind).
func (e *Evaluator) renderInterpParts(parts []ast.InterpPart, env value.Environment) (string, error) {
	var out []byte
	for _, part := range parts {
		if part.IsLiteral {
			out = append(out, part.Literal...)
			continue
		}
		v, err := e.evalExpr(part.Expr, env)
		if err != nil {
			return "", err
		}
		out = append(out, v.String()...)
	}
	return string(out), nil
}

// resolvePath joins a relative path literal against baseDir; absolute paths
// pass through unchanged.
func (e *Evaluator) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.baseDir, path)
}
