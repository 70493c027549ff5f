package parser

import (
	"fmt"

	"github.com/glint-lang/glint/internal/diag"
	"github.com/glint-lang/glint/internal/source"
)

// ErrorKind is the closed set of ways parsing can fail. The first one
// encountered aborts parsing; there is no error recovery.
type ErrorKind int

const (
	ExpectedToken ErrorKind = iota
	UnexpectedToken
	MissingRightSide
	NegativeArrayIndex
	UnexpectedColonInObjectKV
	ExpectedSeparatorInObjectKV
	NoIdentifierAfterLet
	NoTokensLeft
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingRightSide:
		return "MissingRightSide"
	case NegativeArrayIndex:
		return "NegativeArrayIndex"
	case UnexpectedColonInObjectKV:
		return "UnexpectedColonInObjectKV"
	case ExpectedSeparatorInObjectKV:
		return "ExpectedSeparatorInObjectKV"
	case NoIdentifierAfterLet:
		return "NoIdentifierAfterLet"
	case NoTokensLeft:
		return "NoTokensLeft"
	default:
		return "Unknown"
	}
}

// Error is a parser failure.
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
	return diag.New("ParseError."+e.Kind.String(), e.SourceName, e.Span, e.Hint)
}
