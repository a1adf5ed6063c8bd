package vector

// Dense is a vector of arbitrary length backed by a []float64. Its length is
// fixed at construction.
type Dense struct {
	data []float64
}

// New returns a zero-filled Dense vector of length n.
// Negative lengths are treated as 0.
func New(n int) *Dense {
	if n < 0 {
		n = 0
	}
	return &Dense{data: make([]float64, n)}
}

// Of returns a Dense vector holding a copy of xs.
func Of(xs ...float64) *Dense {
	data := make([]float64, len(xs))
	copy(data, xs)
	return &Dense{data: data}
}

// Wrap returns a Dense vector backed by data without copying.
// Mutations to data are visible through the vector and vice versa.
func Wrap(data []float64) *Dense {
	return &Dense{data: data}
}

func (d *Dense) Len() int               { return len(d.data) }
func (d *Dense) At(i int) float64       { return d.data[i] }
func (d *Dense) SetAt(i int, x float64) { d.data[i] = x }
func (d *Dense) raw() ([]float64, bool) { return d.data, true }

// Data returns the backing slice.
func (d *Dense) Data() []float64 {
	return d.data
}

func (d *Dense) String() string {
	return formatElems(d.data)
}
