// Package value defines the runtime value model the evaluator produces and
// consumes: a small closed tagged union plus the Environment chain
// closures capture.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies a Value's kind, for typeOf and for error messages.
type Type byte

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypePath
	TypeArray
	TypeObject
	TypeClosure
	TypeBuiltin
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	case TypePath:
		return "Path"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	case TypeClosure, TypeBuiltin:
		return "Function"
	default:
		return "Unknown"
	}
}

// Value is implemented by every runtime value kind.
type Value interface {
	Type() Type
	String() string
	Equals(other Value) bool
}

// Environment is the lexical-scope lookup/extension interface the
// evaluator and closures use. Env (environment.go) is the only
// implementation.
type Environment interface {
	Get(name string) (Value, bool)
	Set(name string, value Value)
	Extend() Environment
}

// Null is the absence of a value.
type Null struct{}

func (Null) Type() Type     { return TypeNull }
func (Null) String() string { return "null" }
func (Null) Equals(o Value) bool {
	_, ok := o.(Null)
	return ok
}

// Bool is a boolean.
type Bool bool

func (Bool) Type() Type { return TypeBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Equals(o Value) bool {
	ob, ok := o.(Bool)
	return ok && b == ob
}

// Int is a 64-bit signed integer.
type Int int64

func (Int) Type() Type       { return TypeInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Equals(o Value) bool {
	oi, ok := o.(Int)
	return ok && i == oi
}

// Float is a 64-bit IEEE-754 float.
type Float float64

func (Float) Type() Type       { return TypeFloat }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }
func (f Float) Equals(o Value) bool {
	of, ok := o.(Float)
	return ok && f == of
}

// String is a text string.
type String string

func (String) Type() Type       { return TypeString }
func (s String) String() string { return string(s) }
func (s String) Equals(o Value) bool {
	os, ok := o.(String)
	return ok && s == os
}

// Path is a filesystem path literal, kept distinct from String so
// import/display can treat it specially.
type Path string

func (Path) Type() Type       { return TypePath }
func (p Path) String() string { return string(p) }
func (p Path) Equals(o Value) bool {
	op, ok := o.(Path)
	return ok && p == op
}

// List is an ordered, heterogeneous array.
type List struct {
	elems []Value
}

// NewList builds a List from elements, copying the slice so the caller's
// backing array can be reused.
func NewList(elems ...Value) *List {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &List{elems: cp}
}

func (*List) Type() Type          { return TypeArray }
func (l *List) Len() int          { return len(l.elems) }
func (l *List) Elements() []Value { return l.elems }

// Get returns the element at i, or Null if i is out of range. Callers
// needing an IndexOutOfBounds/NegativeArrayIndex distinction (the
// evaluator) bounds-check themselves; Get is the convenience form for
// built-ins like elem/head/tail that don't need to distinguish.
func (l *List) Get(i int) Value {
	if i < 0 || i >= len(l.elems) {
		return Null{}
	}
	return l.elems[i]
}

func (l *List) String() string {
	parts := make([]string, len(l.elems))
	for i, e := range l.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Equals(o Value) bool {
	ol, ok := o.(*List)
	if !ok || len(l.elems) != len(ol.elems) {
		return false
	}
	for i, e := range l.elems {
		if !e.Equals(ol.elems[i]) {
			return false
		}
	}
	return true
}

// Object is an ordered string-keyed map: insertion order is preserved for
// iteration (objectKeys/objectValues/display); lookup is by key.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject builds an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

func (*Object) Type() Type { return TypeObject }

// Set inserts or overwrites key, appending to the iteration order only the
// first time key is seen.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get looks up key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) String() string {
	parts := make([]string, len(o.keys))
	for i, k := range o.keys {
		v := o.vals[k]
		parts[i] = fmt.Sprintf("%s = %s", k, v.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (o *Object) Equals(other Value) bool {
	oo, ok := other.(*Object)
	if !ok || len(o.keys) != len(oo.keys) {
		return false
	}
	for k, v := range o.vals {
		ov, exists := oo.vals[k]
		if !exists || !v.Equals(ov) {
			return false
		}
	}
	return true
}

// Closure is a function-literal value: its parameter names, unevaluated
// body, and the environment it closed over at definition time. Body is
// interface{} (rather than ast.Expr) solely to avoid a value<->ast import
// cycle; the evaluator type-asserts it back to ast.Expr.
type Closure struct {
	Params []string
	Body   interface{}
	Env    Environment
}

func (*Closure) Type() Type { return TypeClosure }
func (c *Closure) String() string {
	return "<function>"
}
func (c *Closure) Equals(o Value) bool {
	return c == o
}

// CallArgs is what a lazy Builtin's implementation receives: the calling
// environment plus the means to evaluate any one of its unevaluated
// argument expressions on demand, so it can short-circuit.
type CallArgs struct {
	Env     Environment
	NumArgs int
	EvalArg func(i int) (Value, error)
	RawArg  func(i int) interface{} // ast.Expr
}

// Builtin is a built-in function. Exactly one of Lazy or Strict is set.
// Lazy built-ins (if, maybe) receive unevaluated argument expressions and
// decide for themselves which ones to evaluate; strict built-ins receive
// ordinary pre-evaluated Values.
type Builtin struct {
	Name   string
	Arity  int
	Lazy   func(call CallArgs) (Value, error)
	Strict func(args []Value) (Value, error)
}

// NewStrictBuiltin builds a Builtin whose arguments are evaluated before
// the implementation runs, checking arity.
func NewStrictBuiltin(name string, arity int, fn func(args []Value) (Value, error)) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: arity,
		Strict: func(args []Value) (Value, error) {
			if len(args) != arity {
				return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, arity, len(args))
			}
			return fn(args)
		},
	}
}

// NewLazyBuiltin builds a Builtin whose implementation receives
// unevaluated argument expressions plus the calling environment, so it can
// choose which arguments to evaluate and in what order.
func NewLazyBuiltin(name string, arity int, fn func(call CallArgs) (Value, error)) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: arity,
		Lazy: func(call CallArgs) (Value, error) {
			if call.NumArgs != arity {
				return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, arity, call.NumArgs)
			}
			return fn(call)
		},
	}
}

func (*Builtin) Type() Type { return TypeBuiltin }
func (b *Builtin) String() string {
	return "<native function>"
}
func (b *Builtin) Equals(o Value) bool {
	return b == o
}

// Truthy reports whether a Value counts as true for `!`, `&&`, `||`, and
// the if/maybe built-ins. Numeric truthiness is strictly greater-than-zero,
// so zero and negative numbers are both falsy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Null:
		return false
	case Int:
		return t > 0
	case Float:
		return t > 0
	case String:
		return len(t) > 0
	case Path:
		return len(t) > 0
	case *List:
		return t.Len() > 0
	case *Object:
		return t.Len() > 0
	default:
		// Closures and builtins are not data; never truthy.
		return false
	}
}
