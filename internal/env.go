package internal

import "fmt"

type env struct {
	enclosing *env
	values    map[string]loxValue
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]loxValue),
	}
}

func (e *env) get(name *Token) (loxValue, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, undefinedVar(name)
}

// define binds name in this scope only, replacing any previous binding
func (e *env) define(name string, value loxValue) {
	e.values[name] = value
}

// assign updates the nearest scope that already binds name
func (e *env) assign(name *Token, value loxValue) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return undefinedVar(name)
}

func undefinedVar(name *Token) *runtimeError {
	return &runtimeError{
		token: name,
		err:   errUndefinedVar,
		msg:   fmt.Sprintf("%s '%s'.", errUndefinedVar, name.lexeme),
	}
}
