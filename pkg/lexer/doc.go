// Package lexer provides lexical analysis for Glint source text.
//
// The lexer is the first stage of the interpreter pipeline, converting raw
// source text into a stream of Tokens the parser consumes.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: let, in; literal keywords: true, false, null
//   - Identifiers: alphanumeric/underscore runs starting with a letter or
//     underscore
//   - Literals: integers, floats, strings (with escapes and interpolation),
//     paths (with interpolation)
//   - Operators: + - * / % == != < <= > >= && || ! =
//   - Delimiters: ( ) [ ] { } , : . ;
//
// Comment Handling:
//   - `//` line comments, disambiguated from the Slash operator and from
//     path literals by one character of lookahead
//
// Position Tracking:
//   - Every token carries a byte-offset Span into the source, not a
//     line/column pair — line/column are derived only when rendering a
//     diagnostic
//
// String and Path Interpolation:
//   - `${...}` splices inside strings and paths are found by brace-depth
//     counting (so a nested object literal inside a splice doesn't
//     terminate it early) and recursively tokenized with a fresh Lexer
//     instance, producing an INTERP_STRING/INTERP_PATH token whose Inner
//     sequence alternates literal text chunks and the splice's own tokens
//
// The lexer follows the maximal-munch principle for multi-character
// operators (`==`, `!=`, `<=`, `>=`, `&&`, `||`).
//
// Usage Example:
//
//	l := lexer.New("<expr>", "let x = 2 in x * 21")
//	for {
//	    tok, err := l.NextToken()
//	    if err != nil {
//	        break
//	    }
//	    if tok.Kind == lexer.EOF {
//	        break
//	    }
//	    fmt.Println(tok)
//	}
package lexer
