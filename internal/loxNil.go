package internal

type loxNil struct{}

func (n loxNil) getOperator(op operator) (operatorApply, error) {
	return nil, operandError(op)
}

func (n loxNil) String() string {
	return "nil"
}
