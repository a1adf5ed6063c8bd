package vector

// Each function here clones its primary operand and applies the InPlace
// counterpart to the clone. Inputs are never mutated.

// Add returns a + b.
func Add(a, b Vector) (Vector, error) {
	return AddInPlace(Clone(a), b)
}

// Sub returns a - b.
func Sub(a, b Vector) (Vector, error) {
	return SubInPlace(Clone(a), b)
}

// AddMultiple returns a + b*factor.
func AddMultiple(a, b Vector, factor float64) (Vector, error) {
	return AddMultipleInPlace(Clone(a), b, factor)
}

// Mul returns a multiplied by a scalar or, element-wise, by a vector.
func Mul(a Vector, operand any) (Vector, error) {
	return MulInPlace(Clone(a), operand)
}

// Div returns a divided by a scalar or, element-wise, by a vector.
func Div(a Vector, operand any) (Vector, error) {
	return DivInPlace(Clone(a), operand)
}

// Scale returns a * factor.
func Scale(a Vector, factor float64) Vector {
	return ScaleInPlace(Clone(a), factor)
}

// ScaleAdd returns a*factor + other.
func ScaleAdd(a Vector, factor float64, other Vector) (Vector, error) {
	return ScaleAddInPlace(Clone(a), factor, other)
}

// AddWeighted returns a*(1-weight) + b*weight.
func AddWeighted(a, b Vector, weight float64) (Vector, error) {
	return AddWeightedInPlace(Clone(a), b, weight)
}

// Normalise returns a unit-magnitude copy of v.
func Normalise(v Vector) (Vector, error) {
	return NormaliseInPlace(Clone(v))
}

// Negate returns -v.
func Negate(v Vector) Vector {
	return NegateInPlace(Clone(v))
}

// Abs returns the element-wise absolute value of v.
func Abs(v Vector) Vector {
	return AbsInPlace(Clone(v))
}

// Fill returns a vector shaped like v with every element set to x.
func Fill(v Vector, x float64) Vector {
	return FillInPlace(Clone(v), x)
}

// CrossProduct returns a × b for 3-dimensional a and b.
func CrossProduct(a, b Vector) (Vector, error) {
	return CrossProductInPlace(Clone(a), b)
}
