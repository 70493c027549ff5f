// Package ast defines the expression-tree nodes the parser builds and the
// evaluator walks. Every node carries the byte-offset Span of the source
// text it was parsed from; there is exactly one tree shape — the tagged
// union of Expr implementations below — with no separate statement or
// pattern hierarchy.
package ast

import "github.com/glint-lang/glint/internal/source"

// Expr is implemented by every node kind. Span returns the byte range in
// the originating Source the node was parsed from.
type Expr interface {
	Span() source.Span
	exprNode()
}

type baseExpr struct {
	span source.Span
}

func (b baseExpr) Span() source.Span { return b.span }
func (baseExpr) exprNode()           {}

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	baseExpr
	Value int64
}

// NewIntLiteral builds an IntLiteral.
func NewIntLiteral(span source.Span, v int64) *IntLiteral {
	return &IntLiteral{baseExpr{span}, v}
}

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	baseExpr
	Value float64
}

// NewFloatLiteral builds a FloatLiteral.
func NewFloatLiteral(span source.Span, v float64) *FloatLiteral {
	return &FloatLiteral{baseExpr{span}, v}
}

// BoolLiteral is the `true` or `false` keyword literal.
type BoolLiteral struct {
	baseExpr
	Value bool
}

// NewBoolLiteral builds a BoolLiteral.
func NewBoolLiteral(span source.Span, v bool) *BoolLiteral {
	return &BoolLiteral{baseExpr{span}, v}
}

// NullLiteral is the `null` keyword literal.
type NullLiteral struct{ baseExpr }

// NewNullLiteral builds a NullLiteral.
func NewNullLiteral(span source.Span) *NullLiteral {
	return &NullLiteral{baseExpr{span}}
}

// StringLiteral is a plain (non-interpolated) string literal; the value
// already has escape sequences decoded.
type StringLiteral struct {
	baseExpr
	Value string
}

// NewStringLiteral builds a StringLiteral.
func NewStringLiteral(span source.Span, v string) *StringLiteral {
	return &StringLiteral{baseExpr{span}, v}
}

// PathLiteral is a plain (non-interpolated) path literal, verbatim text
// including its leading `/`, `./`, or `../`.
type PathLiteral struct {
	baseExpr
	Value string
}

// NewPathLiteral builds a PathLiteral.
func NewPathLiteral(span source.Span, v string) *PathLiteral {
	return &PathLiteral{baseExpr{span}, v}
}

// InterpPart is one piece of an interpolated string or path: either a
// literal text chunk or an embedded expression to evaluate and splice in.
type InterpPart struct {
	Literal   string
	Expr      Expr
	IsLiteral bool
}

// InterpolatedString is a string literal containing one or more `${...}`
// splices, alternating literal chunks and expression parts.
type InterpolatedString struct {
	baseExpr
	Parts []InterpPart
}

// NewInterpolatedString builds an InterpolatedString.
func NewInterpolatedString(span source.Span, parts []InterpPart) *InterpolatedString {
	return &InterpolatedString{baseExpr{span}, parts}
}

// InterpolatedPath is a path literal containing one or more `${...}`
// splices.
type InterpolatedPath struct {
	baseExpr
	Parts []InterpPart
}

// NewInterpolatedPath builds an InterpolatedPath.
func NewInterpolatedPath(span source.Span, parts []InterpPart) *InterpolatedPath {
	return &InterpolatedPath{baseExpr{span}, parts}
}

// Identifier is a bare name reference.
type Identifier struct {
	baseExpr
	Name string
}

// NewIdentifier builds an Identifier.
func NewIdentifier(span source.Span, name string) *Identifier {
	return &Identifier{baseExpr{span}, name}
}

// ArrayLiteral is `[ expr* ]`.
type ArrayLiteral struct {
	baseExpr
	Elements []Expr
}

// NewArrayLiteral builds an ArrayLiteral.
func NewArrayLiteral(span source.Span, elems []Expr) *ArrayLiteral {
	return &ArrayLiteral{baseExpr{span}, elems}
}

// ObjectEntry is one `ident = expr` pair inside an object literal.
type ObjectEntry struct {
	Key   string
	Value Expr
}

// ObjectLiteral is `{ (ident = expr)* }`.
type ObjectLiteral struct {
	baseExpr
	Entries []ObjectEntry
}

// NewObjectLiteral builds an ObjectLiteral.
func NewObjectLiteral(span source.Span, entries []ObjectEntry) *ObjectLiteral {
	return &ObjectLiteral{baseExpr{span}, entries}
}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	// OpNot is the `!` boolean-negation-by-truthiness operator.
	OpNot UnaryOp = iota
	// OpNeg is unary `-`.
	OpNeg
)

// Unary is a prefix-operator expression.
type Unary struct {
	baseExpr
	Op      UnaryOp
	Operand Expr
}

// NewUnary builds a Unary expression.
func NewUnary(span source.Span, op UnaryOp, operand Expr) *Unary {
	return &Unary{baseExpr{span}, op, operand}
}

// BinaryOp identifies an infix operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAnd
	OpOr
)

// Binary is an infix-operator expression.
type Binary struct {
	baseExpr
	Op          BinaryOp
	Left, Right Expr
}

// NewBinary builds a Binary expression.
func NewBinary(span source.Span, op BinaryOp, left, right Expr) *Binary {
	return &Binary{baseExpr{span}, op, left, right}
}

// FnDecl is a function literal `(param*) { body }`.
type FnDecl struct {
	baseExpr
	Params []string
	Body   Expr
}

// NewFnDecl builds a FnDecl.
func NewFnDecl(span source.Span, params []string, body Expr) *FnDecl {
	return &FnDecl{baseExpr{span}, params, body}
}

// Call is `callee(args...)`.
type Call struct {
	baseExpr
	Callee Expr
	Args   []Expr
}

// NewCall builds a Call.
func NewCall(span source.Span, callee Expr, args []Expr) *Call {
	return &Call{baseExpr{span}, callee, args}
}

// ArrayIndex is `base[index]`.
type ArrayIndex struct {
	baseExpr
	Base, Index Expr
}

// NewArrayIndex builds an ArrayIndex.
func NewArrayIndex(span source.Span, base, index Expr) *ArrayIndex {
	return &ArrayIndex{baseExpr{span}, base, index}
}

// ObjectAccess is `base.field`.
type ObjectAccess struct {
	baseExpr
	Base  Expr
	Field string
}

// NewObjectAccess builds an ObjectAccess.
func NewObjectAccess(span source.Span, base Expr, field string) *ObjectAccess {
	return &ObjectAccess{baseExpr{span}, base, field}
}

// Binding is one `ident = expr` clause in a let-in.
type Binding struct {
	Name  string
	Value Expr
}

// LetIn is `let binding+ in body`. Bindings are evaluated in order, each
// one seeing every binding before it but not itself or any binding after
// it — a binding referencing its own name sees an unbound identifier.
type LetIn struct {
	baseExpr
	Bindings []Binding
	Body     Expr
}

// NewLetIn builds a LetIn.
func NewLetIn(span source.Span, bindings []Binding, body Expr) *LetIn {
	return &LetIn{baseExpr{span}, bindings, body}
}
