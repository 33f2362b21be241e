package parser

import "github.com/goloxlang/golox/internal/token"

// ExprVisitor is the interface that wraps the per-variant Visit methods.
//
// A visitor is called back once for the node it is handed; recursing into
// child expressions is the visitor's own responsibility.
type ExprVisitor interface {
	VisitBinaryExpr(expr *ExprBinary) any
	VisitGroupingExpr(expr *ExprGrouping) any
	VisitLiteralExpr(expr *ExprLiteral) any
	VisitUnaryExpr(expr *ExprUnary) any
}

// Expr is an expression tree node. The variant set is closed:
// literal, grouping, unary and binary.
type Expr interface {
	Accept(v ExprVisitor) any
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func (e *ExprBinary) Accept(v ExprVisitor) any {
	return v.VisitBinaryExpr(e)
}

type ExprGrouping struct {
	Expression Expr
}

func (e *ExprGrouping) Accept(v ExprVisitor) any {
	return v.VisitGroupingExpr(e)
}

// ExprLiteral holds the decoded literal value: float64, string, bool or nil.
type ExprLiteral struct {
	Value any
}

func (e *ExprLiteral) Accept(v ExprVisitor) any {
	return v.VisitLiteralExpr(e)
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

func (e *ExprUnary) Accept(v ExprVisitor) any {
	return v.VisitUnaryExpr(e)
}

var _ Expr = (*ExprBinary)(nil)
var _ Expr = (*ExprGrouping)(nil)
var _ Expr = (*ExprLiteral)(nil)
var _ Expr = (*ExprUnary)(nil)
