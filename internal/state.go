package internal

import (
	"errors"
	"fmt"
)

// Exit statuses reported to the shell
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

type parseError struct {
	err   error
	line  int
	where string
}

func (e parseError) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

type runtimeError struct {
	token *Token
	err   error
	msg   string
}

func (e *runtimeError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.err.Error()
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// Line returns the line of the token that caused the error
func (e *runtimeError) Line() int {
	return e.token.line
}

// interpreterState stores the state of an interpreter run
type interpreterState struct {
	source       string
	tokens       []Token
	stmts        []stmt
	errors       []parseError
	runtimeError *runtimeError
	logger       IPrinter
}

func (s *interpreterState) setError(err error, line int, where string) {
	s.errors = append(s.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
}

func (s *interpreterState) tokenError(err error, tk *Token) {
	if tk.token == EOF {
		s.setError(err, tk.line, " at end")
		return
	}
	s.setError(err, tk.line, " at '"+tk.lexeme+"'")
}

func (s *interpreterState) runtimeErr(err error, tk *Token) *runtimeError {
	return &runtimeError{err: err, token: tk}
}

// Valid returns true if no lexical or syntax error was found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Errors returns the formatted lexical and syntax errors
func (s *interpreterState) Errors() []string {
	out := make([]string, len(s.errors))
	for i, e := range s.errors {
		out[i] = e.String()
	}
	return out
}

// PrintErrors prints all errors and returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Errorln(e.String())
	}
	if s.runtimeError != nil {
		s.logger.Errorln(fmt.Sprintf("%s\n[line %d]", s.runtimeError.Error(), s.runtimeError.Line()))
	}
	return len(s.errors) != 0 || s.runtimeError != nil
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errExpectedEnd = errors.New("Expect end of expression.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errAddOperands = errors.New("Operands must be two numbers or two strings.")
var errUndefinedOp = errors.New("Undefined operator")
