// Package parser implements a recursive-descent, Pratt-precedence parser
// that turns a Glint token stream into a single expression tree.
//
// Grammar shape:
//
//   - Precedence, lowest to highest: || ; && ; == != ; < <= > >= ; + - ;
//     * / % ; unary ! and unary - ; postfix call/index/field.
//   - Primary forms: literals, identifiers, `(expr)` grouping, `[expr*]`
//     arrays, `{ident = expr, ...}` objects, `let ident = expr... in body`,
//     and function literals `(ident*) { body }`.
//   - Postfix forms bind tighter than any infix operator and are resolved
//     immediately after a primary is parsed: `callee(args...)`,
//     `base[index]`, `base.field`, chainable left to right.
//
// Disambiguating `(` is the one place the grammar needs backtracking: it
// starts either a parenthesized expression or a function literal, and the
// two are only distinguishable after scanning past the matching `)` to see
// whether a `{` follows. The parser buffers tokens lazily by index rather
// than the classic two-token cur/peek window, so this backtrack is a plain
// integer save/restore (see tryParseFnDecl).
//
// Errors are reported as the first one encountered — there is no attempt
// at error recovery or continued parsing after a failure, matching how the
// evaluator and lexer behave.
package parser
