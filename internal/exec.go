package internal

import "errors"

type exec struct {
	state *interpreterState

	globals *env
	env     *env
}

func newExec(state *interpreterState) *exec {
	globals := newEnv(nil)
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
	}
}

// interpret runs the parsed statements in order. It stops at the first
// runtime error, which is kept in the state, and returns false.
func (e *exec) interpret() bool {
	for _, s := range e.state.stmts {
		if _, err := s.accept(e); err != nil {
			e.runtimeError(err)
			return false
		}
	}
	return true
}

// evaluate returns the value of a single expression tree
func (e *exec) evaluate(ex expr) (loxValue, error) {
	r, err := ex.accept(e)
	if err != nil {
		return nil, err
	}
	value, _ := r.(loxValue)
	return value, nil
}

func (e *exec) runtimeError(err error) {
	var runErr *runtimeError
	if !errors.As(err, &runErr) {
		runErr = &runtimeError{err: err, token: &Token{}}
	}
	e.state.runtimeError = runErr
}

func (e *exec) visitExprStmt(stmt *exprStmt) (R, error) {
	_, err := e.evaluate(stmt.expression)
	return nil, err
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	value, err := e.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	e.state.logger.Println(stringify(value))
	return nil, nil
}

func (e *exec) visitVarStmt(stmt *varStmt) (R, error) {
	var val loxValue = loxNil{}
	if stmt.initializer != nil {
		var err error
		if val, err = e.evaluate(stmt.initializer); err != nil {
			return nil, err
		}
	}
	e.env.define(stmt.name.lexeme, val)
	return nil, nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) (R, error) {
	return nil, e.executeBlock(stmt.stmts, newEnv(e.env))
}

func (e *exec) executeBlock(stmts []stmt, env *env) error {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if _, err := s.accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	val, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if err := e.env.assign(expr.name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case EQUAL_EQUAL:
		return loxBool(isEqual(left, right)), nil
	case BANG_EQUAL:
		return loxBool(!isEqual(left, right)), nil
	}
	op, ok := binaryOperators[expr.operator.token]
	if !ok {
		return nil, e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return e.operate(op, expr.operator, left, right)
}

// operate applies op to value, passing the remaining operands along
func (e *exec) operate(op operator, tk *Token, value loxValue, arguments ...loxValue) (loxValue, error) {
	if value == nil {
		value = loxNil{}
	}
	apply, err := value.getOperator(op)
	if err != nil {
		return nil, e.state.runtimeErr(err, tk)
	}
	result, err := apply(arguments...)
	if err != nil {
		return nil, e.state.runtimeErr(err, tk)
	}
	return result, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	value, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case BANG:
		return loxBool(!truthy(value)), nil
	case MINUS:
		return e.operate(opNeg, expr.operator, value)
	}
	return nil, e.state.runtimeErr(errUndefinedOp, expr.operator)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	return e.env.get(expr.name)
}
