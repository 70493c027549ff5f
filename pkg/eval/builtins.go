package eval

import (
	"fmt"
	"path/filepath"

	"github.com/glint-lang/glint/internal/value"
	"github.com/glint-lang/glint/pkg/lexer"
	"github.com/glint-lang/glint/pkg/parser"
)

// registerBuiltins populates e.builtins with the five required built-ins
// plus the supplemented object/array utilities.
func (e *Evaluator) registerBuiltins() {
	reg := func(b *value.Builtin) { e.builtins[b.Name] = b }

	reg(value.NewLazyBuiltin("if", 3, e.builtinIf))
	reg(value.NewLazyBuiltin("maybe", 2, e.builtinMaybe))
	reg(value.NewLazyBuiltin("import", 1, e.builtinImport))
	reg(value.NewStrictBuiltin("typeOf", 1, builtinTypeOf))
	reg(value.NewStrictBuiltin("print", 1, builtinPrint))
	reg(value.NewStrictBuiltin("println", 1, builtinPrintln))

	reg(value.NewStrictBuiltin("objectKeys", 1, builtinObjectKeys))
	reg(value.NewStrictBuiltin("objectValues", 1, builtinObjectValues))
	reg(value.NewStrictBuiltin("objectMerge", 2, builtinObjectMerge))
	reg(value.NewStrictBuiltin("objectGet", 2, builtinObjectGet))

	reg(value.NewStrictBuiltin("length", 1, builtinLength))
	reg(value.NewStrictBuiltin("head", 1, builtinHead))
	reg(value.NewStrictBuiltin("tail", 1, builtinTail))
	reg(value.NewStrictBuiltin("elem", 2, builtinElem))
}

// builtinIf evaluates its condition, then only the selected branch.
func (e *Evaluator) builtinIf(call value.CallArgs) (value.Value, error) {
	cond, err := call.EvalArg(0)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return call.EvalArg(1)
	}
	return call.EvalArg(2)
}

// builtinMaybe returns arg 0 if truthy, otherwise evaluates and returns arg 1.
func (e *Evaluator) builtinMaybe(call value.CallArgs) (value.Value, error) {
	v, err := call.EvalArg(0)
	if err != nil {
		return nil, err
	}
	if value.Truthy(v) {
		return v, nil
	}
	return call.EvalArg(1)
}

// builtinImport reads, parses, and evaluates another file's root expression
// in a fresh environment. Registered as a lazy built-in purely so RawArg(0)
// gives access to the argument expression's span for error attribution; the
// argument is still evaluated unconditionally, so the built-in remains
// behaviorally strict.
func (e *Evaluator) builtinImport(call value.CallArgs) (value.Value, error) {
	argExpr := call.RawArg(0)
	target, err := call.EvalArg(0)
	if err != nil {
		return nil, err
	}
	path, ok := target.(value.Path)
	if !ok {
		return nil, e.errorfExpr(argExpr, TypeMismatch, "import expects a Path argument, got %v", target.Type())
	}

	expr, err := e.loader.Load(string(path))
	if err != nil {
		switch err.(type) {
		case *lexer.Error, *parser.Error:
			return nil, e.errorfExpr(argExpr, ImportParse, "failed to parse %s: %s", path, err.Error())
		default:
			return nil, e.errorfExpr(argExpr, ImportFailure, "failed to read %s: %s", path, err.Error())
		}
	}

	sub := newEvaluator(filepath.Dir(string(path)), string(path), e.loader)
	return sub.Eval(expr)
}

func builtinTypeOf(args []value.Value) (value.Value, error) {
	switch args[0].Type() {
	case value.TypeNull:
		return value.String("null"), nil
	case value.TypeBool:
		return value.String("bool"), nil
	case value.TypeInt:
		return value.String("int"), nil
	case value.TypeFloat:
		return value.String("float"), nil
	case value.TypeString:
		return value.String("string"), nil
	case value.TypePath:
		return value.String("path"), nil
	case value.TypeArray:
		return value.String("array"), nil
	case value.TypeObject:
		return value.String("object"), nil
	default:
		return value.String("function"), nil
	}
}

func builtinPrint(args []value.Value) (value.Value, error) {
	fmt.Print(args[0].String())
	return value.Null{}, nil
}

func builtinPrintln(args []value.Value) (value.Value, error) {
	fmt.Println(args[0].String())
	return value.Null{}, nil
}

// builtinObjectKeys returns an object's keys in insertion order.
func builtinObjectKeys(args []value.Value) (value.Value, error) {
	obj, ok := args[0].(*value.Object)
	if !ok {
		return nil, fmt.Errorf("objectKeys expects an Object, got %v", args[0].Type())
	}
	keys := obj.Keys()
	elems := make([]value.Value, len(keys))
	for i, k := range keys {
		elems[i] = value.String(k)
	}
	return value.NewList(elems...), nil
}

// builtinObjectValues returns an object's values in key insertion order.
func builtinObjectValues(args []value.Value) (value.Value, error) {
	obj, ok := args[0].(*value.Object)
	if !ok {
		return nil, fmt.Errorf("objectValues expects an Object, got %v", args[0].Type())
	}
	keys := obj.Keys()
	elems := make([]value.Value, len(keys))
	for i, k := range keys {
		v, _ := obj.Get(k)
		elems[i] = v
	}
	return value.NewList(elems...), nil
}

// builtinObjectMerge merges two objects, with the second argument's keys
// taking precedence; keys keep the iteration position of their first
// appearance, scanning the first object's keys and then the second's, each
// in insertion order.
func builtinObjectMerge(args []value.Value) (value.Value, error) {
	left, ok := args[0].(*value.Object)
	if !ok {
		return nil, fmt.Errorf("objectMerge expects Objects, got %v", args[0].Type())
	}
	right, ok := args[1].(*value.Object)
	if !ok {
		return nil, fmt.Errorf("objectMerge expects Objects, got %v", args[1].Type())
	}
	merged := value.NewObject()
	for _, k := range left.Keys() {
		v, _ := left.Get(k)
		merged.Set(k, v)
	}
	for _, k := range right.Keys() {
		v, _ := right.Get(k)
		merged.Set(k, v)
	}
	return merged, nil
}

// builtinObjectGet looks up a key, returning Null if absent rather than
// erroring (the field-access operator `.` is the strict form).
func builtinObjectGet(args []value.Value) (value.Value, error) {
	obj, ok := args[0].(*value.Object)
	if !ok {
		return nil, fmt.Errorf("objectGet expects an Object, got %v", args[0].Type())
	}
	key, ok := args[1].(value.String)
	if !ok {
		return nil, fmt.Errorf("objectGet expects a String key, got %v", args[1].Type())
	}
	if v, ok := obj.Get(string(key)); ok {
		return v, nil
	}
	return value.Null{}, nil
}

func builtinLength(args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.List:
		return value.Int(v.Len()), nil
	case *value.Object:
		return value.Int(v.Len()), nil
	case value.String:
		return value.Int(len(v)), nil
	default:
		return nil, fmt.Errorf("length expects an Array, Object, or String, got %v", args[0].Type())
	}
}

func builtinHead(args []value.Value) (value.Value, error) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, fmt.Errorf("head expects an Array, got %v", args[0].Type())
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("head: empty array")
	}
	return list.Get(0), nil
}

func builtinTail(args []value.Value) (value.Value, error) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, fmt.Errorf("tail expects an Array, got %v", args[0].Type())
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("tail: empty array")
	}
	return value.NewList(list.Elements()[1:]...), nil
}

// builtinElem clamps an out-of-range index to Null instead of erroring,
// the array-utility counterpart to the strict `[]` indexing operator.
func builtinElem(args []value.Value) (value.Value, error) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, fmt.Errorf("elem expects an Array, got %v", args[0].Type())
	}
	idx, ok := args[1].(value.Int)
	if !ok {
		return nil, fmt.Errorf("elem expects an Int index, got %v", args[1].Type())
	}
	if idx < 0 || int64(idx) >= int64(list.Len()) {
		return value.Null{}, nil
	}
	return list.Get(int(idx)), nil
}
