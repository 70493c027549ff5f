package eval

import (
	"fmt"

	"github.com/glint-lang/glint/internal/diag"
	"github.com/glint-lang/glint/internal/source"
)

// ErrorKind is the closed set of ways evaluation can fail.
type ErrorKind int

const (
	VariableDoesntExist ErrorKind = iota
	FieldDoesntExist
	IndexOutOfBounds
	NegativeArrayIndex
	ArgsMismatch
	TypeMismatch
	DivideByZero
	IntegerOverflow
	NotCallable
	ImportFailure
	ImportParse
)

func (k ErrorKind) String() string {
	switch k {
	case VariableDoesntExist:
		return "VariableDoesntExist"
	case FieldDoesntExist:
		return "FieldDoesntExist"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case NegativeArrayIndex:
		return "NegativeArrayIndex"
	case ArgsMismatch:
		return "ArgsMismatch"
	case TypeMismatch:
		return "TypeMismatch"
	case DivideByZero:
		return "DivideByZero"
	case IntegerOverflow:
		return "IntegerOverflow"
	case NotCallable:
		return "NotCallable"
	case ImportFailure:
		return "ImportFailure"
	case ImportParse:
		return "ImportParse"
	default:
		return "Unknown"
	}
}

// Error is an evaluator failure, carrying a span into the expression node
// that caused it.
type Error struct {
	Kind       ErrorKind
	Span       source.Span
	SourceName string
	Message    string
	Hint       string
}

func (e *Error) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Hint)
}

// Diagnostic flattens the error into the cross-stage diagnostic shape.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.New("EvalError."+e.Kind.String(), e.SourceName, e.Span, e.Hint)
}
