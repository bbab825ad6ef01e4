package perceptron

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation error returned from Train.
var ErrInvalidInput = errors.New("invalid input")

type Set interface {
	Len() int
	Dim() int
	At(int) []float64
}

type Slice [][]float64

func (set Slice) Len() int {
	return len(set)
}

func (set Slice) Dim() int {
	if len(set) == 0 {
		return 0
	}
	return len(set[0])
}

func (set Slice) At(i int) []float64 {
	return set[i]
}

// Augment returns a copy of each vector in x with a constant 1 appended.
// The extra component multiplies the bias term of the weight vector.
func Augment(x Set) [][]float64 {
	a := make([][]float64, x.Len())
	for i := range a {
		xi := x.At(i)
		a[i] = make([]float64, len(xi)+1)
		copy(a[i], xi)
		a[i][len(xi)] = 1
	}
	return a
}

// Dimension returns the feature dimension shared by
// the vectors in both sets of examples.
// Returns an error if either set is empty,
// vectors of different dimension are found
// or a value is not finite.
func Dimension(neg, pos Set) (int, error) {
	if neg.Len() == 0 {
		return 0, fmt.Errorf("%w: no negative examples", ErrInvalidInput)
	}
	if pos.Len() == 0 {
		return 0, fmt.Errorf("%w: no positive examples", ErrInvalidInput)
	}
	n := len(neg.At(0))
	if n == 0 {
		return 0, fmt.Errorf("%w: zero-dimensional examples", ErrInvalidInput)
	}
	for _, x := range []struct {
		name string
		set  Set
	}{{"negative", neg}, {"positive", pos}} {
		for i := 0; i < x.set.Len(); i++ {
			xi := x.set.At(i)
			if n != len(xi) {
				return 0, fmt.Errorf("%w: %s example %d: vector dims: found %d and %d", ErrInvalidInput, x.name, i, n, len(xi))
			}
			if err := finite(xi); err != nil {
				return 0, fmt.Errorf("%w: %s example %d: %v", ErrInvalidInput, x.name, i, err)
			}
		}
	}
	return n, nil
}

func finite(x []float64) error {
	for j, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("component %d is %v", j, v)
		}
	}
	return nil
}

// CheckWeights verifies that w has length m and finite components.
func CheckWeights(name string, w []float64, m int) error {
	if len(w) != m {
		return fmt.Errorf("%w: %s weights: want %d components, found %d", ErrInvalidInput, name, m, len(w))
	}
	if err := finite(w); err != nil {
		return fmt.Errorf("%w: %s weights: %v", ErrInvalidInput, name, err)
	}
	return nil
}
