package vector

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sync"
)

// Vectoriser is implemented by types that know how to turn themselves into
// a vector. The returned vector must not alias the receiver's storage.
type Vectoriser interface {
	Vectorise() (Vector, error)
}

// Scalar is implemented by numeric wrapper types that should be treated as a
// single number wherever an operand may be a scalar or a vector.
type Scalar interface {
	Float64() float64
}

// Converter turns one kind of input into a vector.
type Converter struct {
	// Name is a human-readable identifier (e.g., "float64-slice").
	Name string

	// Priority determines the order converters are tried in. Higher runs
	// first; equal priorities keep registration order.
	Priority int

	// Convert returns ok=false when x is not a kind this converter handles.
	// A non-nil error stops the lookup.
	Convert func(x any) (v Vector, ok bool, err error)
}

// ConverterRegistry holds the converters consulted by Convert.
//
// Registration is safe for concurrent use; the entry list is replaced on
// every Register so lookups never observe a half-sorted list.
type ConverterRegistry struct {
	mu      sync.RWMutex
	entries []Converter
}

// Converters is the registry used by Convert and the fixed-size
// constructors.
var Converters = &ConverterRegistry{}

// Register adds a converter.
func (r *ConverterRegistry) Register(c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Converter, len(r.entries), len(r.entries)+1)
	copy(entries, r.entries)
	entries = append(entries, c)
	sortByPriority(entries)
	r.entries = entries
}

// List returns the registered converters in lookup order.
func (r *ConverterRegistry) List() []Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Convert returns an owned vector built from x by the first converter that
// accepts it, or ErrUnsupportedConversion naming x's type.
func (r *ConverterRegistry) Convert(x any) (Vector, error) {
	r.mu.RLock()
	entries := r.entries
	r.mu.RUnlock()

	for _, c := range entries {
		v, ok, err := c.Convert(x)
		if err != nil {
			return nil, err
		}
		if ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedConversion, x)
}

// sortByPriority sorts entries by priority in descending order, keeping
// registration order among equals.
func sortByPriority(entries []Converter) {
	for i := 1; i < len(entries); i++ {
		key := entries[i]
		j := i - 1
		for j >= 0 && entries[j].Priority < key.Priority {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = key
	}
}

// RegisterConverter adds c to the global registry.
func RegisterConverter(c Converter) {
	Converters.Register(c)
}

// Convert builds an owned vector from x using the global registry.
//
// Built-in inputs, in lookup order: any Vector (cloned), a Vectoriser,
// []float64 and []float32 (bulk copy), iter.Seq[float64], and any slice or
// array whose elements are numbers or Scalars.
func Convert(x any) (Vector, error) {
	return Converters.Convert(x)
}

func init() {
	Converters.Register(Converter{Name: "vector", Priority: 40, Convert: convertVector})
	Converters.Register(Converter{Name: "vectoriser", Priority: 30, Convert: convertVectoriser})
	Converters.Register(Converter{Name: "float-slice", Priority: 20, Convert: convertFloatSlice})
	Converters.Register(Converter{Name: "sequence", Priority: 10, Convert: convertSequence})
	Converters.Register(Converter{Name: "collection", Priority: 0, Convert: convertCollection})
}

func convertVector(x any) (Vector, bool, error) {
	v, ok := x.(Vector)
	if !ok {
		return nil, false, nil
	}
	return Clone(v), true, nil
}

func convertVectoriser(x any) (Vector, bool, error) {
	vz, ok := x.(Vectoriser)
	if !ok {
		return nil, false, nil
	}
	v, err := vz.Vectorise()
	if err != nil {
		return nil, false, fmt.Errorf("vector: vectorising %T: %w", x, err)
	}
	return v, true, nil
}

func convertFloatSlice(x any) (Vector, bool, error) {
	switch s := x.(type) {
	case []float64:
		return Of(s...), true, nil
	case []float32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return Wrap(out), true, nil
	}
	return nil, false, nil
}

func convertSequence(x any) (Vector, bool, error) {
	var seq iter.Seq[float64]
	switch s := x.(type) {
	case iter.Seq[float64]:
		seq = s
	case func(yield func(float64) bool):
		seq = s
	default:
		return nil, false, nil
	}
	return Wrap(slices.Collect(seq)), true, nil
}

func convertCollection(x any) (Vector, bool, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false, nil
	}
	out := make([]float64, rv.Len())
	for i := range out {
		e := rv.Index(i).Interface()
		f, ok := toScalar(e)
		if !ok {
			return nil, false, fmt.Errorf("%w: element %d of %T is %T", ErrUnsupportedConversion, i, x, e)
		}
		out[i] = f
	}
	return Wrap(out), true, nil
}

// toScalar reports whether x is a single number, including values of named
// numeric types, and returns its value.
func toScalar(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case Scalar:
		return n.Float64(), true
	}
	// Named numeric types such as `type meters float64`.
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
