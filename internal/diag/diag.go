// Package diag defines the common diagnostic shape every stage's closed
// error taxonomy reduces to when it needs to cross a stage boundary (an
// import that fails inside a nested parse, say). Each stage still owns its
// own error kind enum; diag.Diagnostic is the flattened {kind, source,
// span, hint} triple used for reporting and for correlating a nested
// failure back to the sub-evaluation that produced it.
package diag

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/glint-lang/glint/internal/source"
)

// Diagnostic is the reporting-level view of a lexer, parser, or evaluator
// error. ID lets a host correlate an error that surfaces through several
// layers of wrapping (e.g. an ImportParse failure that embeds a ParseError
// from a different file) back to the originating sub-evaluation.
type Diagnostic struct {
	ID         string
	Kind       string
	SourceName string
	Span       source.Span
	Hint       string
}

// New builds a Diagnostic, stamping it with a fresh correlation ID.
func New(kind, sourceName string, span source.Span, hint string) Diagnostic {
	return Diagnostic{
		ID:         uuid.NewString(),
		Kind:       kind,
		SourceName: sourceName,
		Span:       span,
		Hint:       hint,
	}
}

func (d Diagnostic) Error() string {
	if d.Hint == "" {
		return fmt.Sprintf("%s: %s (%s)", d.SourceName, d.Kind, d.Span)
	}

	return fmt.Sprintf("%s: %s (%s) — %s", d.SourceName, d.Kind, d.Span, d.Hint)
}

// Diagnosable is implemented by every stage's error type so that code
// crossing a stage boundary (import, the REPL driver) can flatten any of
// them into a reportable Diagnostic without a type switch per stage.
type Diagnosable interface {
	error
	Diagnostic() Diagnostic
}
