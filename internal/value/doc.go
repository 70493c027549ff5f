// Package value provides the runtime value system for the interpreter.
//
// This package defines every value a Glint expression can evaluate to. The
// value system is designed to be small, type-safe, and closed: there are
// exactly ten kinds and no escape hatch for adding an eleventh at runtime.
//
// Type Safety:
//
//	Each value type implements the Value interface. Type() allows safe
//	type discrimination for error reporting and for built-ins like typeOf.
//
// Equality Semantics:
//
//	All values support structural equality through Equals(). Equality never
//	holds across kinds (an Int is never == a String); Array and Object
//	equality recurses into their elements/entries.
//
// String Representation:
//
//	Every value converts to a human-readable string via String(), used by
//	print/println, the REPL, and string interpolation.
//
// Value Kinds:
//
// Primitive:
//   - Null, Bool, Int (64-bit signed), Float (64-bit IEEE-754)
//   - String (UTF-8), Path (filesystem path literal)
//
// Composite:
//   - List: ordered, heterogeneous array
//   - Object: insertion-ordered string-keyed map
//
// Functional:
//   - Closure: a user-defined function literal plus its captured environment
//   - Builtin: a function implemented in Go, either strict (ordinary
//     pre-evaluated arguments) or lazy (receives unevaluated argument
//     expressions, for short-circuiting built-ins like if/maybe)
//
// The Environment interface provides the parent-pointer lexical-scope
// chain every closure captures by reference at its definition site.
package value
