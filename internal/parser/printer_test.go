package parser_test

import (
	"testing"

	"github.com/goloxlang/golox/internal/parser"
	"github.com/goloxlang/golox/internal/token"
	"github.com/stretchr/testify/assert"
)

func exampleTree() parser.Expr {
	return &parser.ExprBinary{
		Left: &parser.ExprUnary{
			Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
			Right: &parser.ExprLiteral{
				Value: float64(123),
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &parser.ExprGrouping{
			Expression: &parser.ExprLiteral{
				Value: 45.67,
			},
		},
	}
}

func TestAstPrinterVisitor(t *testing.T) {
	t.Parallel()

	p := parser.NewAstPrinter()
	out := p.Print(exampleTree())
	assert.Equal(t, "(* (- 123) (group 45.67))", out)
}

func TestAstPrinterNilLiteral(t *testing.T) {
	t.Parallel()

	p := parser.NewAstPrinter()
	out := p.Print(&parser.ExprLiteral{Value: nil})
	assert.Equal(t, "nil", out)
}

func TestRPNPrinterVisitor(t *testing.T) {
	t.Parallel()

	p := parser.NewRPNPrinter()
	out := p.Print(exampleTree())
	assert.Equal(t, "123 ~ 45.67 *", out)
}
