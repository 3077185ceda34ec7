// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a dense sequence of float64 values.
type Vector struct {
	data []float64
}

// New returns a vector of the given size with every element set to fill.
// Size zero is legal; negative size returns ErrInvalidSize.
func New(size int, fill float64) (*Vector, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	data := make([]float64, size)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &Vector{data: data}, nil
}

// NewFrom returns a vector holding a copy of values.
func NewFrom(values []float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// Size returns the number of elements.
func (v *Vector) Size() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// AddAt adds x to element i.
func (v *Vector) AddAt(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.AddAt(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] += x

	return nil
}

// Values returns a copy of the underlying elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector { return NewFrom(v.data) }

// sameSize checks that o is non-nil and as long as v.
func (v *Vector) sameSize(method string, o *Vector) error {
	if o == nil {
		return fmt.Errorf("Vector.%s: %w", method, ErrNilVector)
	}
	if len(o.data) != len(v.data) {
		return fmt.Errorf("Vector.%s: %d vs %d: %w", method, len(v.data), len(o.data), ErrDimensionMismatch)
	}

	return nil
}

// Add performs v += o in place.
func (v *Vector) Add(o *Vector) error {
	if err := v.sameSize("Add", o); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] += o.data[i]
	}

	return nil
}

// Subtract performs v -= o in place.
func (v *Vector) Subtract(o *Vector) error {
	if err := v.sameSize("Subtract", o); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] -= o.data[i]
	}

	return nil
}

// Difference returns v - o as a new vector.
func (v *Vector) Difference(o *Vector) (*Vector, error) {
	if err := v.sameSize("Difference", o); err != nil {
		return nil, err
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - o.data[i]
	}

	return &Vector{data: out}, nil
}

// Dot returns Σ v[i]*o[i].
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := v.sameSize("Dot", o); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// Scale multiplies every element by k in place.
func (v *Vector) Scale(k float64) {
	for i := range v.data {
		v.data[i] *= k
	}
}

// Product returns k*v as a new vector; v is unchanged.
func (v *Vector) Product(k float64) *Vector {
	out := v.Clone()
	out.Scale(k)

	return out
}

// SumOfElements returns the left-to-right sum of all elements.
func (v *Vector) SumOfElements() float64 {
	sum := 0.0
	for _, x := range v.data {
		sum += x
	}

	return sum
}

// L2Norm returns sqrt(Σ v[i]²).
func (v *Vector) L2Norm() float64 {
	sum := 0.0
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
