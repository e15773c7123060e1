package internal

import "fmt"

// loxValue is a runtime value. The set of implementations is closed:
// loxNil, loxBool, loxNumber and loxString.
type loxValue interface {
	fmt.Stringer
	getOperator(op operator) (operatorApply, error)
}

// stringify formats a value the way print shows it
func stringify(value loxValue) string {
	if value == nil {
		return loxNil{}.String()
	}
	return value.String()
}

// isEqual compares two values without coercion. Every value type is a
// comparable Go value, so equal dynamic type and payload means equality.
func isEqual(left, right loxValue) bool {
	if left == nil {
		left = loxNil{}
	}
	if right == nil {
		right = loxNil{}
	}
	return left == right
}

// truthy reports whether value counts as true: nil and false do not
func truthy(value loxValue) bool {
	switch v := value.(type) {
	case nil, loxNil:
		return false
	case loxBool:
		return bool(v)
	}
	return true
}
