package internal

import "strings"

//R generic type
type R interface{}

// astPrinter renders trees as parenthesized prefix expressions
type astPrinter struct{}

func (v astPrinter) print(e expr) string {
	out, _ := e.accept(v)
	return out.(string)
}

func (v astPrinter) printStmt(s stmt) string {
	out, _ := s.accept(v)
	return out.(string)
}

func (v astPrinter) parenthesize(name string, exprs ...expr) string {
	var out strings.Builder
	out.WriteString("(" + name)
	for _, e := range exprs {
		out.WriteString(" " + v.print(e))
	}
	out.WriteString(")")
	return out.String()
}

func (v astPrinter) visitExprStmt(stmt *exprStmt) (R, error) {
	return v.parenthesize(";", stmt.expression), nil
}

func (v astPrinter) visitPrintStmt(stmt *printStmt) (R, error) {
	return v.parenthesize("print", stmt.expression), nil
}

func (v astPrinter) visitVarStmt(stmt *varStmt) (R, error) {
	if stmt.initializer == nil {
		return "(var " + stmt.name.lexeme + ")", nil
	}
	return v.parenthesize("var "+stmt.name.lexeme, stmt.initializer), nil
}

func (v astPrinter) visitBlockStmt(stmt *blockStmt) (R, error) {
	out := "(block"
	for _, s := range stmt.stmts {
		out += " " + v.printStmt(s)
	}
	return out + ")", nil
}

func (v astPrinter) visitAssignExpr(expr *assignExpr) (R, error) {
	return v.parenthesize("= "+expr.name.lexeme, expr.value), nil
}

func (v astPrinter) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, expr.left, expr.right), nil
}

func (v astPrinter) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return v.parenthesize("group", expr.expression), nil
}

func (v astPrinter) visitLiteralExpr(expr *literalExpr) (R, error) {
	return stringify(expr.value), nil
}

func (v astPrinter) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, expr.right), nil
}

func (v astPrinter) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}
