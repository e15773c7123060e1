package internal

import (
	"math"
	"strconv"
	"strings"
)

type loxNumber float64

var numberBinaryOperations = map[operator]func(x, y float64) loxValue{
	opAdd: func(x, y float64) loxValue {
		return loxNumber(x + y)
	},
	opSub: func(x, y float64) loxValue {
		return loxNumber(x - y)
	},
	opDiv: func(x, y float64) loxValue {
		return loxNumber(x / y)
	},
	opMul: func(x, y float64) loxValue {
		return loxNumber(x * y)
	},
	opLt: func(x, y float64) loxValue {
		return loxBool(x < y)
	},
	opLte: func(x, y float64) loxValue {
		return loxBool(x <= y)
	},
	opGt: func(x, y float64) loxValue {
		return loxBool(x > y)
	},
	opGte: func(x, y float64) loxValue {
		return loxBool(x >= y)
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if op == opNeg {
		return func(arguments ...loxValue) (loxValue, error) {
			return -n, nil
		}, nil
	}
	if apply, ok := numberBinaryOperations[op]; ok {
		return func(arguments ...loxValue) (loxValue, error) {
			y, ok := arguments[0].(loxNumber)
			if !ok {
				return nil, operandError(op)
			}
			return apply(float64(n), float64(y)), nil
		}, nil
	}
	return nil, operandError(op)
}

// String drops the fractional part of integral numbers: 3.0 prints as 3
func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Repr always keeps a fractional digit: 3.0 prints as 3.0
func (n loxNumber) Repr() string {
	out := n.String()
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(out, ".") {
		return out
	}
	return out + ".0"
}
