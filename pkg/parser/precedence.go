package parser

import "github.com/glint-lang/glint/pkg/lexer"

// Operator precedence levels, lowest to highest. Postfix forms (call,
// index, field access) bind tighter than anything here and are parsed
// directly as part of a primary expression rather than through this
// table — see parsePostfix in expressions.go.
const (
	precedenceLowest = iota
	precedenceOr     // ||
	precedenceAnd    // &&
	precedenceEquals // == !=
	precedenceCompare
	precedenceSum     // + -
	precedenceProduct // * / %
	precedenceUnary   // ! (unary) -
)

var precedenceMap = map[lexer.Kind]int{
	lexer.OR:      precedenceOr,
	lexer.AND:     precedenceAnd,
	lexer.EQ:      precedenceEquals,
	lexer.NOTEQ:   precedenceEquals,
	lexer.LT:      precedenceCompare,
	lexer.LTEQ:    precedenceCompare,
	lexer.GT:      precedenceCompare,
	lexer.GTEQ:    precedenceCompare,
	lexer.PLUS:    precedenceSum,
	lexer.MINUS:   precedenceSum,
	lexer.STAR:    precedenceProduct,
	lexer.SLASH:   precedenceProduct,
	lexer.PERCENT: precedenceProduct,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur().Kind]; ok {
		return prec
	}
	return precedenceLowest
}
