package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdaroesti/lpp-go/token"
)

func TestLetStatementString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "variable"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "miVar"},
					Value: "miVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "otraVar"},
					Value: "otraVar",
				},
			},
		},
	}

	assert.Equal(t, "variable miVar = otraVar;", program.String())
}

func TestPrefixString(t *testing.T) {
	p := &Prefix{
		Token:    token.Token{Type: token.MINUS, Literal: "-"},
		Operator: "-",
		Right:    &Identifier{Value: "a"},
	}
	assert.Equal(t, "(-a)", p.String())
}

func TestInfixString(t *testing.T) {
	i := &Infix{
		Left:     &Identifier{Value: "a"},
		Operator: "*",
		Right:    &Identifier{Value: "b"},
	}
	assert.Equal(t, "(a * b)", i.String())
}

func TestIfStringWithoutAlternative(t *testing.T) {
	ifExpr := &If{
		Condition:   &Identifier{Value: "x"},
		Consequence: &Block{Statements: []Statement{&ExpressionStatement{Expression: &Identifier{Value: "y"}}}},
	}
	assert.Equal(t, "si x y", ifExpr.String())
	assert.Nil(t, ifExpr.Alternative)
}
