// Package eval provides the tree-walking evaluator for Glint, the final
// stage of the lexer -> parser -> evaluator pipeline. It walks an
// internal/ast expression tree and computes its runtime internal/value
// Value, implementing lexical scoping, closures, and the built-in function
// library.
//
// The package is split the way the rest of the pipeline's stages are:
//   - evaluator.go: central evalExpr dispatch, literals, identifiers,
//     array/object literals, string/path interpolation
//   - operators.go: unary/binary operators, saturating arithmetic,
//     equality, comparison
//   - functions.go: call dispatch (closures and built-ins), array indexing,
//     object field access
//   - control_flow.go: let-in
//   - builtins.go: if, maybe, import, typeOf, print/println, and the
//     supplemented object/array utilities
//
// Usage:
//
//	lx := lexer.New("input", `let x = 1 in x + 1`)
//	p := parser.New(lx, "input")
//	expr, err := p.Parse()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	e := eval.New(".", "input")
//	result, err := e.Eval(expr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.String())
package eval
