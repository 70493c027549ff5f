package parser

import (
	"fmt"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/source"
	"github.com/glint-lang/glint/pkg/lexer"
)

// tokenSource is anything the parser can pull a token stream from: a real
// Lexer, or (for re-parsing one interpolation splice's already-tokenized
// run) a sliceSource.
type tokenSource interface {
	NextToken() (lexer.Token, error)
}

// sliceSource replays an already-lexed token slice, used to re-parse the
// inner token run of one `${...}` interpolation splice as a standalone
// expression.
type sliceSource struct {
	toks []lexer.Token
	idx  int
}

func (s *sliceSource) NextToken() (lexer.Token, error) {
	if s.idx >= len(s.toks) {
		return lexer.Token{Kind: lexer.EOF}, nil
	}
	t := s.toks[s.idx]
	s.idx++
	return t, nil
}

// Parser holds a lazily-filled buffer of upcoming tokens, indexed by pos.
// Buffering (rather than the classic two-token cur/peek window) is what
// makes the function-literal-vs-grouped-expression backtrack in
// tryParseFnDecl a plain integer save/restore of pos instead of having to
// snapshot the lexer itself.
type Parser struct {
	src        tokenSource
	toks       []lexer.Token
	pos        int
	sourceName string
	lexErr     error
}

// New creates a Parser pulling tokens from l.
func New(l *lexer.Lexer, sourceName string) *Parser {
	return &Parser{src: l, sourceName: sourceName}
}

func newFromTokens(toks []lexer.Token, sourceName string) *Parser {
	return &Parser{src: &sliceSource{toks: toks}, sourceName: sourceName}
}

func (p *Parser) ensure(i int) {
	for len(p.toks) <= i {
		if p.lexErr != nil {
			p.toks = append(p.toks, lexer.Token{Kind: lexer.EOF})
			continue
		}
		tok, err := p.src.NextToken()
		if err != nil {
			p.lexErr = err
			p.toks = append(p.toks, lexer.Token{Kind: lexer.EOF})
			continue
		}
		p.toks = append(p.toks, tok)
	}
}

func (p *Parser) cur() lexer.Token {
	p.ensure(p.pos)
	return p.toks[p.pos]
}

func (p *Parser) peek() lexer.Token {
	p.ensure(p.pos + 1)
	return p.toks[p.pos+1]
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) mark() int        { return p.pos }
func (p *Parser) reset(mark int)   { p.pos = mark }

func (p *Parser) lexFailure() error {
	if lexErr, ok := p.lexErr.(*lexer.Error); ok {
		return &Error{
			Kind:       UnexpectedToken,
			Span:       lexErr.Span,
			SourceName: p.sourceName,
			Message:    "lex error: " + lexErr.Error(),
		}
	}
	return p.lexErr
}

func (p *Parser) errorf(kind ErrorKind, span source.Span, hint string, format string, args ...interface{}) error {
	return &Error{
		Kind:       kind,
		Span:       span,
		SourceName: p.sourceName,
		Message:    fmt.Sprintf(format, args...),
		Hint:       hint,
	}
}

// expect consumes the current token if it has kind k, else returns an
// ExpectedToken error.
func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	tok := p.cur()
	if p.lexErr != nil {
		return tok, p.lexFailure()
	}
	if tok.Kind != k {
		return tok, p.errorf(ExpectedToken, tok.Span, "",
			"expected %v, got %v", k, tok.Kind)
	}
	p.advance()
	return tok, nil
}

// Parse parses the entire token stream as a single expression, requiring
// every token to be consumed.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.lexErr != nil {
		return nil, p.lexFailure()
	}

	if p.cur().Kind == lexer.EOF {
		if p.lexErr != nil {
			return nil, p.lexFailure()
		}
		return nil, p.errorf(NoTokensLeft, p.cur().Span, "", "no expression to parse")
	}

	expr, err := p.parseExpr(precedenceLowest)
	if err != nil {
		return nil, err
	}

	if p.lexErr != nil {
		return nil, p.lexFailure()
	}

	if p.cur().Kind != lexer.EOF {
		return nil, p.errorf(UnexpectedToken, p.cur().Span, "",
			"unexpected trailing token %v after expression", p.cur().Kind)
	}

	return expr, nil
}

// parseExpr is the Pratt loop: parse one primary (with its postfix chain
// already resolved), then fold in infix operators whose precedence beats
// prec, recursing with the operator's own precedence on the right-hand
// side so that equal-precedence operators stay left-associative.
func (p *Parser) parseExpr(prec int) (ast.Expr, error) {
	if p.lexErr != nil {
		return nil, p.lexFailure()
	}

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	left, err = p.parsePostfix(left)
	if err != nil {
		return nil, err
	}

	for prec < p.curPrecedence() {
		op, ok := binaryOps[p.cur().Kind]
		if !ok {
			break
		}
		opPrec := p.curPrecedence()
		p.advance()

		right, err := p.parseExpr(opPrec)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.errorf(MissingRightSide, p.cur().Span, "",
				"missing right-hand side for binary operator")
		}

		span := left.Span().Cover(right.Span())
		left = ast.NewBinary(span, op, left, right)
	}

	return left, nil
}

var binaryOps = map[lexer.Kind]ast.BinaryOp{
	lexer.PLUS:    ast.OpAdd,
	lexer.MINUS:   ast.OpSub,
	lexer.STAR:    ast.OpMul,
	lexer.SLASH:   ast.OpDiv,
	lexer.PERCENT: ast.OpMod,
	lexer.EQ:      ast.OpEq,
	lexer.NOTEQ:   ast.OpNotEq,
	lexer.LT:      ast.OpLess,
	lexer.LTEQ:    ast.OpLessEq,
	lexer.GT:      ast.OpGreater,
	lexer.GTEQ:    ast.OpGreaterEq,
	lexer.AND:     ast.OpAnd,
	lexer.OR:      ast.OpOr,
}
