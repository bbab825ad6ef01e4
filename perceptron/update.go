package perceptron

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sweep makes one pass through the augmented examples with the
// perceptron learning rule and returns the updated weights.
// The input w is not modified.
//
// Updates are online: negative examples are visited in order, then
// positive examples, and each activation is computed with the weights
// as already corrected earlier in the same pass.
//   negative, dot(x, w) >= 0:  w <- w - x
//   positive, dot(x, w) <  0:  w <- w + x
// A NaN activation is corrected for either class, as in Evaluate.
func Sweep(neg, pos [][]float64, w []float64) []float64 {
	w = append([]float64(nil), w...)
	for _, x := range neg {
		if !(Activation(x, w) < 0) {
			floats.Sub(w, x)
		}
	}
	for _, x := range pos {
		if !(Activation(x, w) >= 0) {
			floats.Add(w, x)
		}
	}
	return w
}

// MistakeBound returns the classic perceptron mistake bound (R/gamma)^2
// where R is the largest norm of an augmented example and gamma is the
// margin of the separating weights w, normalized to unit length.
// Starting from zero weights, the perceptron makes at most this many
// updates before converging.
// Returns an error if w does not strictly separate the examples.
func MistakeBound(neg, pos Set, w []float64) (float64, error) {
	m, err := Dimension(neg, pos)
	if err != nil {
		return 0, err
	}
	if err := CheckWeights("separating", w, m+1); err != nil {
		return 0, err
	}
	norm := floats.Norm(w, 2)
	if norm == 0 {
		return 0, fmt.Errorf("%w: separating weights are zero", ErrInvalidInput)
	}
	var (
		r     float64
		gamma = math.Inf(1)
	)
	visit := func(x []float64, sign float64) {
		r = math.Max(r, floats.Norm(x, 2))
		gamma = math.Min(gamma, sign*floats.Dot(x, w)/norm)
	}
	for _, x := range Augment(neg) {
		visit(x, -1)
	}
	for _, x := range Augment(pos) {
		visit(x, 1)
	}
	if gamma <= 0 {
		return 0, fmt.Errorf("%w: weights do not separate the examples (margin %.6g)", ErrInvalidInput, gamma)
	}
	return (r / gamma) * (r / gamma), nil
}
