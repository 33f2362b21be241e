package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders an expression tree in a Lisp-style prefix notation,
// e.g. "1 + 2 * 3" prints as "(+ 1 (* 2 3))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitBinaryExpr implements ExprVisitor.
func (p *AstPrinter) VisitBinaryExpr(expr *ExprBinary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGroupingExpr implements ExprVisitor.
func (p *AstPrinter) VisitGroupingExpr(expr *ExprGrouping) any {
	return p.parenthesize("group", expr.Expression)
}

// VisitLiteralExpr implements ExprVisitor.
func (p *AstPrinter) VisitLiteralExpr(expr *ExprLiteral) any {
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value)
}

// VisitUnaryExpr implements ExprVisitor.
func (p *AstPrinter) VisitUnaryExpr(expr *ExprUnary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ ExprVisitor = (*AstPrinter)(nil)
