package internal

type loxString string

var stringBinaryOperations = map[operator]func(x, y string) loxValue{
	opAdd: func(x, y string) loxValue {
		return loxString(x + y)
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(arguments ...loxValue) (loxValue, error) {
			y, ok := arguments[0].(loxString)
			if !ok {
				return nil, operandError(op)
			}
			return apply(string(s), string(y)), nil
		}, nil
	}
	return nil, operandError(op)
}

func (s loxString) String() string {
	return string(s)
}

func (s loxString) Repr() string {
	return "\"" + string(s) + "\""
}
