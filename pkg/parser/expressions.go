package parser

import (
	"strconv"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/pkg/lexer"
)

// parsePrefix parses a single primary expression: literals, identifiers,
// unary operators, grouped expressions, function literals, arrays,
// objects, and let-in. This is the "nud" half of the Pratt parser.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	tok := p.cur()

	switch tok.Kind {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(ExpectedToken, tok.Span, "", "invalid integer literal %q", tok.Literal)
		}
		return ast.NewIntLiteral(tok.Span, v), nil

	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf(ExpectedToken, tok.Span, "", "invalid float literal %q", tok.Literal)
		}
		return ast.NewFloatLiteral(tok.Span, v), nil

	case lexer.BOOL:
		p.advance()
		return ast.NewBoolLiteral(tok.Span, tok.Literal == "true"), nil

	case lexer.NULL:
		p.advance()
		return ast.NewNullLiteral(tok.Span), nil

	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Span, tok.Literal), nil

	case lexer.INTERP_STRING:
		p.advance()
		parts, err := p.buildInterpParts(tok.Inner)
		if err != nil {
			return nil, err
		}
		return ast.NewInterpolatedString(tok.Span, parts), nil

	case lexer.PATH:
		p.advance()
		return ast.NewPathLiteral(tok.Span, tok.Literal), nil

	case lexer.INTERP_PATH:
		p.advance()
		parts, err := p.buildInterpParts(tok.Inner)
		if err != nil {
			return nil, err
		}
		return ast.NewInterpolatedPath(tok.Span, parts), nil

	case lexer.IDENT:
		p.advance()
		return ast.NewIdentifier(tok.Span, tok.Literal), nil

	case lexer.NOT:
		p.advance()
		operand, err := p.parseExpr(precedenceUnary)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(tok.Span.Cover(operand.Span()), ast.OpNot, operand), nil

	case lexer.MINUS:
		p.advance()
		operand, err := p.parseExpr(precedenceUnary)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(tok.Span.Cover(operand.Span()), ast.OpNeg, operand), nil

	case lexer.LBRACKET:
		return p.parseArrayLiteral()

	case lexer.LBRACE:
		return p.parseObjectLiteral()

	case lexer.LET:
		return p.parseLetIn()

	case lexer.LPAREN:
		if fn, ok, err := p.tryParseFnDecl(); err != nil {
			return nil, err
		} else if ok {
			return fn, nil
		}
		return p.parseGrouped()

	default:
		return nil, p.errorf(UnexpectedToken, tok.Span, "", "unexpected token %v", tok.Kind)
	}
}

// parsePostfix wraps base in zero or more `(args)` / `[index]` / `.field`
// forms, left to right, the tightest-binding forms in the grammar.
func (p *Parser) parsePostfix(base ast.Expr) (ast.Expr, error) {
	for {
		switch p.cur().Kind {
		case lexer.LPAREN:
			p.advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			closeTok, err := p.expect(lexer.RPAREN)
			if err != nil {
				return nil, err
			}
			base = ast.NewCall(base.Span().Cover(closeTok.Span), base, args)

		case lexer.LBRACKET:
			p.advance()
			index, err := p.parseExpr(precedenceLowest)
			if err != nil {
				return nil, err
			}
			if neg, ok := index.(*ast.Unary); ok && neg.Op == ast.OpNeg {
				if _, ok := neg.Operand.(*ast.IntLiteral); ok {
					return nil, p.errorf(NegativeArrayIndex, neg.Span(), "", "array index must not be negative")
				}
			}
			closeTok, err := p.expect(lexer.RBRACKET)
			if err != nil {
				return nil, err
			}
			base = ast.NewArrayIndex(base.Span().Cover(closeTok.Span), base, index)

		case lexer.DOT:
			p.advance()
			nameTok, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			base = ast.NewObjectAccess(base.Span().Cover(nameTok.Span), base, nameTok.Literal)

		default:
			return base, nil
		}
	}
}

func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	for p.cur().Kind != lexer.RPAREN {
		if p.lexErr != nil {
			return nil, p.lexFailure()
		}
		arg, err := p.parseExpr(precedenceLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		} else {
			break
		}
	}
	return args, nil
}

// parseGrouped parses a parenthesized expression after a function-literal
// attempt has already failed to match.
func (p *Parser) parseGrouped() (ast.Expr, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(precedenceLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// tryParseFnDecl attempts to parse `(` ident* `)` `{` body `}` starting at
// the current LPAREN. On any mismatch it restores the parser to the mark
// taken before the attempt and returns ok=false so the caller falls back
// to parseGrouped.
func (p *Parser) tryParseFnDecl() (ast.Expr, bool, error) {
	start := p.mark()
	startTok := p.cur()

	p.advance() // consume '('

	var params []string
	for p.cur().Kind == lexer.IDENT {
		params = append(params, p.cur().Literal)
		p.advance()
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		}
	}

	if p.cur().Kind != lexer.RPAREN {
		p.reset(start)
		return nil, false, nil
	}
	p.advance() // consume ')'

	if p.cur().Kind != lexer.LBRACE {
		p.reset(start)
		return nil, false, nil
	}
	p.advance() // consume '{'

	body, err := p.parseExpr(precedenceLowest)
	if err != nil {
		return nil, false, err
	}

	closeTok, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, false, err
	}

	return ast.NewFnDecl(startTok.Span.Cover(closeTok.Span), params, body), true, nil
}

// parseArrayLiteral parses `[ expr* ]`, whitespace- or comma-separated.
func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	openTok, err := p.expect(lexer.LBRACKET)
	if err != nil {
		return nil, err
	}

	var elems []ast.Expr
	for p.cur().Kind != lexer.RBRACKET {
		if p.lexErr != nil {
			return nil, p.lexFailure()
		}
		if p.cur().Kind == lexer.EOF {
			return nil, p.errorf(ExpectedToken, p.cur().Span, "", "unterminated array literal")
		}
		elem, err := p.parseExpr(precedenceLowest)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur().Kind == lexer.COMMA {
			p.advance()
		}
	}

	closeTok, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}

	return ast.NewArrayLiteral(openTok.Span.Cover(closeTok.Span), elems), nil
}

// parseObjectLiteral parses `{ (ident = expr)* }`. A `:` where `=` is
// expected is rejected with a hint, since object entries use `=` like a
// let binding, not `:` like JSON.
func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	openTok, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}

	var entries []ast.ObjectEntry
	for p.cur().Kind != lexer.RBRACE {
		if p.lexErr != nil {
			return nil, p.lexFailure()
		}
		keyTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}

		if p.cur().Kind == lexer.COLON {
			return nil, p.errorf(UnexpectedColonInObjectKV, p.cur().Span, "use '=' instead of ':'",
				"object entries are written 'key = value', not 'key: value'")
		}
		if _, err := p.expect(lexer.ASSIGN); err != nil {
			return nil, p.errorf(ExpectedSeparatorInObjectKV, p.cur().Span, "",
				"expected '=' after object key %q", keyTok.Literal)
		}

		value, err := p.parseExpr(precedenceLowest)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.ObjectEntry{Key: keyTok.Literal, Value: value})

		if p.cur().Kind == lexer.COMMA || p.cur().Kind == lexer.SEMI {
			p.advance()
		}
	}

	closeTok, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}

	return ast.NewObjectLiteral(openTok.Span.Cover(closeTok.Span), entries), nil
}

// parseLetIn parses `let binding+ in body`, where bindings are one or more
// `ident = expr` clauses optionally separated by `;` (newline-tolerant:
// whitespace already carries no token, so no separator is required at
// all between two bindings).
func (p *Parser) parseLetIn() (ast.Expr, error) {
	letTok, err := p.expect(lexer.LET)
	if err != nil {
		return nil, err
	}

	var bindings []ast.Binding
	for p.cur().Kind == lexer.IDENT && p.peek().Kind == lexer.ASSIGN {
		nameTok := p.cur()
		p.advance()
		p.advance() // consume '='

		value, err := p.parseExpr(precedenceLowest)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.Binding{Name: nameTok.Literal, Value: value})

		if p.cur().Kind == lexer.SEMI {
			p.advance()
		}
	}

	if len(bindings) == 0 {
		return nil, p.errorf(NoIdentifierAfterLet, p.cur().Span, "",
			"expected at least one 'ident = expr' binding after 'let'")
	}

	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}

	body, err := p.parseExpr(precedenceLowest)
	if err != nil {
		return nil, err
	}

	return ast.NewLetIn(letTok.Span.Cover(body.Span()), bindings, body), nil
}

// buildInterpParts splits a flattened interpolation token sequence (the
// lexer already interleaved literal String chunks with each splice's raw
// tokens) back into alternating literal parts and parsed expression parts.
func (p *Parser) buildInterpParts(toks []lexer.Token) ([]ast.InterpPart, error) {
	var parts []ast.InterpPart
	i := 0
	for i < len(toks) {
		if toks[i].Kind == lexer.STRING {
			parts = append(parts, ast.InterpPart{IsLiteral: true, Literal: toks[i].Literal})
			i++
			continue
		}

		// Collect the contiguous run of tokens belonging to one splice.
		start := i
		for i < len(toks) && toks[i].Kind != lexer.STRING {
			i++
		}
		run := toks[start:i]

		sub := newFromTokens(run, p.sourceName)
		expr, err := sub.Parse()
		if err != nil {
			return nil, err
		}
		parts = append(parts, ast.InterpPart{Expr: expr})
	}
	return parts, nil
}
