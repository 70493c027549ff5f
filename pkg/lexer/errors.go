package lexer

import (
	"fmt"

	"github.com/glint-lang/glint/internal/diag"
	"github.com/glint-lang/glint/internal/source"
)

// ErrorKind is the closed set of ways lexing can fail.
type ErrorKind int

const (
	ParseIntError ErrorKind = iota
	ParseFloatError
	UnclosedString
	UnclosedInterpolation
	UnexpectedChar
)

func (k ErrorKind) String() string {
	switch k {
	case ParseIntError:
		return "ParseInt"
	case ParseFloatError:
		return "ParseFloat"
	case UnclosedString:
		return "UnclosedString"
	case UnclosedInterpolation:
		return "UnclosedInterpolation"
	case UnexpectedChar:
		return "UnexpectedChar"
	default:
		return "Unknown"
	}
}

// Error is a lexer failure: a kind, the span of the offending text, and
// the name of the source it occurred in.
type Error struct {
	Kind       ErrorKind
	Span       source.Span
	SourceName string
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s at %s", e.SourceName, e.Kind, e.Span)
	}
	return fmt.Sprintf("%s: %s at %s: %s", e.SourceName, e.Kind, e.Span, e.Detail)
}

// Diagnostic flattens the error into the cross-stage diagnostic shape.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.New("LexError."+e.Kind.String(), e.SourceName, e.Span, e.Detail)
}
