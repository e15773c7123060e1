package internal

import (
	"io/ioutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface. Println receives program output, Errorln
// receives diagnostics.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Errorln(a ...interface{}) (n int, err error)
}

// Interpreter runs sources through scan, parse and evaluation. Bindings
// made by one Run survive into the next, which is what the REPL relies on.
type Interpreter struct {
	printer IPrinter
	logger  *logrus.Logger
	exec    *exec
}

// NewInterpreter creates an interpreter writing to p. A nil logger
// discards all log output.
func NewInterpreter(p IPrinter, logger *logrus.Logger) *Interpreter {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(ioutil.Discard)
	}
	return &Interpreter{
		printer: p,
		logger:  logger,
		exec:    newExec(nil),
	}
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) int {
	return NewInterpreter(p, nil).Run(source)
}

// Scan returns the tokens of source and the formatted lexical errors
func Scan(source string) ([]Token, []string) {
	state := &interpreterState{source: source}
	lexer := &lexer{line: 1, state: state}
	lexer.scan()
	return state.tokens, state.Errors()
}

func (i *Interpreter) newState(source string) (*interpreterState, *logrus.Entry) {
	state := &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: i.printer,
	}
	return state, i.logger.WithField("run", uuid.New().String())
}

func (i *Interpreter) scan(state *interpreterState, log *logrus.Entry) bool {
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	log.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"errors": len(state.errors),
	}).Debug("scanned source")
	return state.Valid()
}

func (i *Interpreter) parseExpression(state *interpreterState, log *logrus.Entry) (expr, bool) {
	parser := &parser{state: state}
	e := parser.parseExpression()
	log.WithField("errors", len(state.errors)).Debug("parsed expression")
	return e, state.Valid() && e != nil
}

func (i *Interpreter) finish(log *logrus.Entry, status int) int {
	log.WithField("status", status).Debug("finished")
	return status
}

// Tokenize prints one line per token followed by the EOF token
func (i *Interpreter) Tokenize(source string) int {
	state, log := i.newState(source)
	valid := i.scan(state, log)
	state.PrintErrors()
	for _, tk := range state.tokens {
		i.printer.Println(tk.String())
	}
	if !valid {
		return i.finish(log, ExitDataErr)
	}
	return i.finish(log, ExitOK)
}

// Parse prints the tree of source read as a single expression
func (i *Interpreter) Parse(source string) int {
	state, log := i.newState(source)
	if !i.scan(state, log) {
		state.PrintErrors()
		return i.finish(log, ExitDataErr)
	}
	e, ok := i.parseExpression(state, log)
	if !ok {
		state.PrintErrors()
		return i.finish(log, ExitDataErr)
	}
	i.printer.Println(astPrinter{}.print(e))
	return i.finish(log, ExitOK)
}

// Evaluate prints the value of source read as a single expression
func (i *Interpreter) Evaluate(source string) int {
	value, status := i.evaluate(source)
	if status == ExitOK {
		i.printer.Println(stringify(value))
	}
	return status
}

func (i *Interpreter) evaluate(source string) (loxValue, int) {
	state, log := i.newState(source)
	if !i.scan(state, log) {
		state.PrintErrors()
		return nil, i.finish(log, ExitDataErr)
	}
	e, ok := i.parseExpression(state, log)
	if !ok {
		state.PrintErrors()
		return nil, i.finish(log, ExitDataErr)
	}
	i.exec.state = state
	value, err := i.exec.evaluate(e)
	if err != nil {
		i.exec.runtimeError(err)
		log.WithField("line", state.runtimeError.Line()).Debug("runtime error")
		state.PrintErrors()
		return nil, i.finish(log, ExitSoftware)
	}
	return value, i.finish(log, ExitOK)
}

// Run executes source as a program
func (i *Interpreter) Run(source string) int {
	state, log := i.newState(source)
	if !i.scan(state, log) {
		state.PrintErrors()
		return i.finish(log, ExitDataErr)
	}

	parser := &parser{state: state}
	parser.parse()
	log.WithFields(logrus.Fields{
		"statements": len(state.stmts),
		"errors":     len(state.errors),
	}).Debug("parsed source")
	if state.PrintErrors() {
		return i.finish(log, ExitDataErr)
	}

	i.exec.state = state
	if !i.exec.interpret() {
		log.WithField("line", state.runtimeError.Line()).Debug("runtime error")
		state.PrintErrors()
		return i.finish(log, ExitSoftware)
	}
	return i.finish(log, ExitOK)
}

// RunLine runs one line of REPL input. A line that does not end a
// statement is read as an expression and its value is echoed.
func (i *Interpreter) RunLine(line string) int {
	tokens, _ := Scan(line)
	if len(tokens) < 2 {
		return ExitOK
	}
	switch tokens[len(tokens)-2].token {
	case SEMICOLON, RIGHT_BRACE:
		return i.Run(line)
	}
	value, status := i.evaluate(line)
	if status != ExitOK {
		return status
	}
	if s, ok := value.(loxString); ok {
		i.printer.Println(s.Repr())
	} else {
		i.printer.Println(stringify(value))
	}
	return status
}
