package parser

import (
	"fmt"
	"strings"

	"github.com/goloxlang/golox/internal/token"
)

// RPNPrinter renders an expression tree in reverse Polish notation.
// Unary minus prints as "~" to keep it apart from binary subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinaryExpr implements ExprVisitor.
func (p *RPNPrinter) VisitBinaryExpr(expr *ExprBinary) any {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGroupingExpr implements ExprVisitor.
func (p *RPNPrinter) VisitGroupingExpr(expr *ExprGrouping) any {
	return p.reverse("", expr.Expression)
}

// VisitLiteralExpr implements ExprVisitor.
func (p *RPNPrinter) VisitLiteralExpr(expr *ExprLiteral) any {
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value)
}

// VisitUnaryExpr implements ExprVisitor.
func (p *RPNPrinter) VisitUnaryExpr(expr *ExprUnary) any {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(p))
}

var _ ExprVisitor = (*RPNPrinter)(nil)
