package vector

// Plus returns the element-wise sum of its operands. With a single operand it
// returns a clone.
func Plus(first Vector, rest ...Vector) (Vector, error) {
	return fold(first, rest, AddInPlace)
}

// Minus subtracts each of rest from first, strictly left to right:
// Minus(a, b, c) is (a - b) - c.
func Minus(first Vector, rest ...Vector) (Vector, error) {
	return fold(first, rest, SubInPlace)
}

// Times returns the element-wise product of its operands.
func Times(first Vector, rest ...Vector) (Vector, error) {
	return fold(first, rest, func(dst, src Vector) (Vector, error) {
		return MulInPlace(dst, src)
	})
}

// Divide divides first by each of rest element-wise, strictly left to right.
func Divide(first Vector, rest ...Vector) (Vector, error) {
	return fold(first, rest, func(dst, src Vector) (Vector, error) {
		return DivInPlace(dst, src)
	})
}

func fold(first Vector, rest []Vector, op func(dst, src Vector) (Vector, error)) (Vector, error) {
	acc := Clone(first)
	for _, v := range rest {
		if _, err := op(acc, v); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
