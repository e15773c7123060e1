package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

// binaryOperators maps an operator token to the operation it applies
var binaryOperators = map[TokenType]operator{
	PLUS:          opAdd,
	MINUS:         opSub,
	SLASH:         opDiv,
	STAR:          opMul,
	LESS:          opLt,
	LESS_EQUAL:    opLte,
	GREATER:       opGt,
	GREATER_EQUAL: opGte,
}

type operatorApply func(arguments ...loxValue) (loxValue, error)

// operandError is the error reported when op does not accept its operands
func operandError(op operator) error {
	switch op {
	case opAdd:
		return errAddOperands
	case opNeg:
		return errOnlyNumber
	}
	return errOnlyNumbers
}
