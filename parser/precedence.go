package parser

import "github.com/jdaroesti/lpp-go/token"

// Precedence levels, lowest to highest. The Pratt loop keeps consuming
// infix operators as long as the next operator binds tighter than the
// precedence it was called with.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > <
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
)

var precedences = map[token.Type]int{
	token.EQ:             EQUALS,
	token.NOT_EQ:         EQUALS,
	token.LT:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.DIVISION:       PRODUCT,
	token.MULTIPLICATION: PRODUCT,
	token.LPAREN:         CALL,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}
