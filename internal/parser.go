package internal

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

// bailout unwinds the parser to the closest declaration after a syntax
// error has been recorded
type bailout struct{}

func (p *parser) parse() {
	for !p.isAtEnd() {
		st := p.declaration()
		// A declaration that failed to parse comes back as nil after
		// synchronizing, it is already reported in the state errors
		if st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

// parseExpression parses the whole token stream as a single expression
func (p *parser) parseExpression() (e expr) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			e = nil
		}
	}()
	e = p.expression()
	if !p.isAtEnd() {
		p.fatalError(errExpectedEnd, p.peek())
	}
	return e
}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(IDENTIFIER, errExpectedIdentifier)

	var init expr
	if p.match(EQUAL) {
		init = p.expression()
	}

	p.consume(SEMICOLON, errExpectedSemicolonVar)
	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(PRINT) {
		return p.printStmt()
	}
	if p.match(LEFT_BRACE) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(SEMICOLON, errExpectedSemicolonValue)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(RIGHT_BRACE, errUnclosedBlock)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(SEMICOLON, errExpectedSemicolonExpr)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.equality()
	if p.match(EQUAL) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		// Reported without unwinding, the parser is not in a confused state
		p.state.tokenError(errInvalidAssignment, equal)
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(FALSE) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(TRUE) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(NIL) {
		return &literalExpr{value: loxNil{}}
	}
	if p.match(NUMBER, STRING) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(IDENTIFIER) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.fatalError(errExpectedExpr, p.peek())
	return nil
}

func (p *parser) fatalError(err error, tk *Token) {
	p.state.tokenError(err, tk)
	panic(bailout{})
}

func (p *parser) consume(tk TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}

	p.fatalError(err, p.peek())
	return nil
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == token
}

func (p *parser) peek() *Token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *Token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == EOF
}

// synchronize discards tokens until the start of the next statement
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == SEMICOLON {
			return
		}
		switch p.peek().token {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}

		p.advance()
	}
}
