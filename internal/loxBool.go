package internal

import "strconv"

type loxBool bool

func (b loxBool) getOperator(op operator) (operatorApply, error) {
	return nil, operandError(op)
}

func (b loxBool) String() string {
	return strconv.FormatBool(bool(b))
}
