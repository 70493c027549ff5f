package eval

import (
	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/value"
)

// evalLetIn evaluates `let binding+ in body`. Bindings share one child
// environment and are bound progressively: each binding's expression is
// evaluated before its own name is added to that environment, so it can see
// every binding before it but not itself or any binding after it.
func (e *Evaluator) evalLetIn(n *ast.LetIn, env value.Environment) (value.Value, error) {
	letEnv := env.Extend()
	for _, b := range n.Bindings {
		v, err := e.evalExpr(b.Value, letEnv)
		if err != nil {
			return nil, err
		}
		letEnv.Set(b.Name, v)
	}
	return e.evalExpr(n.Body, letEnv)
}
