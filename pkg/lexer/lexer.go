package lexer

import (
	"strconv"
	"strings"

	"github.com/glint-lang/glint/internal/source"
)

// Lexer turns source text into a stream of Tokens. It tracks only a byte
// offset (no line/column). The parser never snapshots a Lexer: it buffers
// the tokens it has pulled and backtracks by restoring an index into that
// buffer.
type Lexer struct {
	sourceName string
	input      string
	pos        int
}

// New builds a Lexer over text, tagging any error spans it produces with
// sourceName.
func New(sourceName, text string) *Lexer {
	return &Lexer{sourceName: sourceName, input: text}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (l *Lexer) peekAt(offset int) byte {
	i := l.pos + offset
	if i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

func (l *Lexer) cur() byte {
	return l.peekAt(0)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
			l.pos++
		}
		if l.cur() == '/' && l.peekAt(1) == '/' {
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		break
	}
}

// NextToken scans and returns the next token. Lexing past the end of input
// always returns an EOF token, never an error.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Span: source.Span{Start: start}}, nil
	}

	ch := l.cur()

	switch {
	case isLetter(ch):
		return l.readIdentifier(), nil
	case isDigit(ch):
		return l.readNumber()
	case ch == '"':
		return l.readString()
	case ch == '.':
		if l.peekAt(1) == '/' || l.peekAt(1) == '.' {
			return l.readPath()
		}
		l.pos++
		return l.single(DOT, start), nil
	case ch == '/':
		if l.peekAt(1) == 0 || isSpace(l.peekAt(1)) {
			l.pos++
			return l.single(SLASH, start), nil
		}
		return l.readPath()
	case ch == '+':
		l.pos++
		return l.single(PLUS, start), nil
	case ch == '-':
		l.pos++
		return l.single(MINUS, start), nil
	case ch == '*':
		l.pos++
		return l.single(STAR, start), nil
	case ch == '%':
		l.pos++
		return l.single(PERCENT, start), nil
	case ch == '=':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return l.spanned(EQ, start), nil
		}
		l.pos++
		return l.single(ASSIGN, start), nil
	case ch == '!':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return l.spanned(NOTEQ, start), nil
		}
		l.pos++
		return l.single(NOT, start), nil
	case ch == '<':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return l.spanned(LTEQ, start), nil
		}
		l.pos++
		return l.single(LT, start), nil
	case ch == '>':
		if l.peekAt(1) == '=' {
			l.pos += 2
			return l.spanned(GTEQ, start), nil
		}
		l.pos++
		return l.single(GT, start), nil
	case ch == '&' && l.peekAt(1) == '&':
		l.pos += 2
		return l.spanned(AND, start), nil
	case ch == '|' && l.peekAt(1) == '|':
		l.pos += 2
		return l.spanned(OR, start), nil
	case ch == '(':
		l.pos++
		return l.single(LPAREN, start), nil
	case ch == ')':
		l.pos++
		return l.single(RPAREN, start), nil
	case ch == '[':
		l.pos++
		return l.single(LBRACKET, start), nil
	case ch == ']':
		l.pos++
		return l.single(RBRACKET, start), nil
	case ch == '{':
		l.pos++
		return l.single(LBRACE, start), nil
	case ch == '}':
		l.pos++
		return l.single(RBRACE, start), nil
	case ch == ',':
		l.pos++
		return l.single(COMMA, start), nil
	case ch == ':':
		l.pos++
		return l.single(COLON, start), nil
	case ch == ';':
		l.pos++
		return l.single(SEMI, start), nil
	default:
		l.pos++
		return Token{}, &Error{
			Kind:       UnexpectedChar,
			Span:       source.Span{Start: start, Length: 1},
			SourceName: l.sourceName,
			Detail:     "unexpected character '" + string(ch) + "'",
		}
	}
}

func (l *Lexer) single(k Kind, start int) Token {
	return Token{Kind: k, Span: source.Span{Start: start, Length: 1}}
}

func (l *Lexer) spanned(k Kind, start int) Token {
	return Token{Kind: k, Span: source.Span{Start: start, Length: l.pos - start}}
}

func (l *Lexer) readIdentifier() Token {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	text := l.input[start:l.pos]
	span := source.Span{Start: start, Length: l.pos - start}
	kind := LookupIdent(text)
	return Token{Kind: kind, Literal: text, Span: span}
}

func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	isFloat := false
	if l.cur() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}

	text := l.input[start:l.pos]
	span := source.Span{Start: start, Length: l.pos - start}

	if isFloat {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Token{}, &Error{Kind: ParseFloatError, Span: span, SourceName: l.sourceName, Detail: err.Error()}
		}
		return Token{Kind: FLOAT, Literal: text, Span: span}, nil
	}

	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return Token{}, &Error{Kind: ParseIntError, Span: span, SourceName: l.sourceName, Detail: err.Error()}
	}
	return Token{Kind: INT, Literal: text, Span: span}, nil
}

// readString reads a double-quoted string starting at the opening quote,
// decoding escape sequences and recursively tokenizing any `${...}`
// interpolation splices.
func (l *Lexer) readString() (Token, error) {
	start := l.pos
	l.pos++ // consume opening quote

	var buf strings.Builder
	chunkStart := l.pos
	var inner []Token
	interpolated := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		inner = append(inner, Token{
			Kind:    STRING,
			Literal: buf.String(),
			Span:    source.Span{Start: chunkStart, Length: l.pos - chunkStart},
		})
		buf.Reset()
	}

	for {
		if l.pos >= len(l.input) {
			return Token{}, &Error{
				Kind:       UnclosedString,
				Span:       source.Span{Start: start, Length: l.pos - start},
				SourceName: l.sourceName,
			}
		}

		ch := l.input[l.pos]

		switch {
		case ch == '"':
			l.pos++
			flush()
			if !interpolated {
				return Token{Kind: STRING, Literal: lastLiteralOrEmpty(inner), Span: source.Span{Start: start, Length: l.pos - start}}, nil
			}
			return Token{Kind: INTERP_STRING, Inner: inner, Span: source.Span{Start: start, Length: l.pos - start}}, nil

		case ch == '\\':
			l.pos++
			if l.pos >= len(l.input) {
				return Token{}, &Error{
					Kind:       UnclosedString,
					Span:       source.Span{Start: start, Length: l.pos - start},
					SourceName: l.sourceName,
				}
			}
			esc := l.input[l.pos]
			switch esc {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case '0':
				buf.WriteByte(0)
			default:
				buf.WriteByte(esc)
			}
			l.pos++

		case ch == '$' && l.peekAt(1) == '{':
			flush()
			splice, err := l.readInterpolationSplice()
			if err != nil {
				return Token{}, err
			}
			interpolated = true
			inner = append(inner, splice...)
			chunkStart = l.pos

		default:
			buf.WriteByte(ch)
			l.pos++
		}
	}
}

// readPath reads a path literal (starting with `/`, `./`, or `../`),
// stopping at whitespace or any of `" , ) } ]`, with the same
// interpolation support as readString but no escape processing.
func (l *Lexer) readPath() (Token, error) {
	start := l.pos
	var buf strings.Builder
	chunkStart := l.pos
	var inner []Token
	interpolated := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		inner = append(inner, Token{
			Kind:    STRING,
			Literal: buf.String(),
			Span:    source.Span{Start: chunkStart, Length: l.pos - chunkStart},
		})
		buf.Reset()
	}

	isStop := func(ch byte) bool {
		return isSpace(ch) || ch == '"' || ch == ',' || ch == ')' || ch == '}' || ch == ']'
	}

	for l.pos < len(l.input) && !isStop(l.input[l.pos]) {
		ch := l.input[l.pos]
		if ch == '$' && l.peekAt(1) == '{' {
			flush()
			splice, err := l.readInterpolationSplice()
			if err != nil {
				return Token{}, err
			}
			interpolated = true
			inner = append(inner, splice...)
			chunkStart = l.pos
			continue
		}
		buf.WriteByte(ch)
		l.pos++
	}
	flush()

	span := source.Span{Start: start, Length: l.pos - start}
	if !interpolated {
		return Token{Kind: PATH, Literal: lastLiteralOrEmpty(inner), Span: span}, nil
	}
	return Token{Kind: INTERP_PATH, Inner: inner, Span: span}, nil
}

// readInterpolationSplice consumes a `${...}` splice starting at `$`,
// finds the matching `}` by brace-depth counting (so a nested `{...}`
// object literal inside the splice doesn't terminate it early), and
// recursively tokenizes the inner text with a fresh Lexer, offsetting
// every produced span back into this lexer's source.
func (l *Lexer) readInterpolationSplice() ([]Token, error) {
	spliceStart := l.pos
	l.pos += 2 // consume "${"

	innerStart := l.pos
	depth := 1
	for l.pos < len(l.input) && depth > 0 {
		switch l.input[l.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				innerEnd := l.pos
				l.pos++ // consume closing brace
				innerText := l.input[innerStart:innerEnd]
				return l.tokenizeOffset(innerText, innerStart)
			}
		}
		l.pos++
	}

	return nil, &Error{
		Kind:       UnclosedInterpolation,
		Span:       source.Span{Start: spliceStart, Length: l.pos - spliceStart},
		SourceName: l.sourceName,
	}
}

// tokenizeOffset fully tokenizes text with a fresh sub-lexer and offsets
// every resulting span by base so it reads as a position in the outer
// source, not in the isolated inner text.
func (l *Lexer) tokenizeOffset(text string, base int) ([]Token, error) {
	sub := New(l.sourceName, text)
	var toks []Token
	for {
		tok, err := sub.NextToken()
		if err != nil {
			if lexErr, ok := err.(*Error); ok {
				lexErr.Span.Start += base
			}
			return nil, err
		}
		if tok.Kind == EOF {
			break
		}
		tok.Span.Start += base
		offsetInnerSpans(tok.Inner, base)
		toks = append(toks, tok)
	}
	return toks, nil
}

func offsetInnerSpans(toks []Token, base int) {
	for i := range toks {
		toks[i].Span.Start += base
		offsetInnerSpans(toks[i].Inner, base)
	}
}

func lastLiteralOrEmpty(inner []Token) string {
	if len(inner) == 0 {
		return ""
	}
	return inner[0].Literal
}
