package perceptron

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mistakes holds the indices of misclassified examples in each class.
// Neg lists negative examples classified as positive,
// Pos lists positive examples classified as negative.
type Mistakes struct {
	Neg []int
	Pos []int
}

// Len returns the total number of mistakes.
func (m Mistakes) Len() int {
	return len(m.Neg) + len(m.Pos)
}

// Activation returns dot(x, w).
// Both vectors must already include the bias component.
func Activation(x, w []float64) float64 {
	return floats.Dot(x, w)
}

// Evaluate finds the augmented examples that w classifies incorrectly.
// A negative example is a mistake if its activation is >= 0,
// a positive example if its activation is < 0,
// so an activation of exactly zero counts as positive.
// An activation that is NaN is a mistake for either class.
// The returned slices are never nil.
func Evaluate(neg, pos [][]float64, w []float64) Mistakes {
	m := Mistakes{Neg: []int{}, Pos: []int{}}
	for i, x := range neg {
		if !(Activation(x, w) < 0) {
			m.Neg = append(m.Neg, i)
		}
	}
	for i, x := range pos {
		if !(Activation(x, w) >= 0) {
			m.Pos = append(m.Pos, i)
		}
	}
	return m
}

// Classify returns the predicted label of the feature vector x:
// 1 for the positive class and 0 for the negative class.
// The vector x must not include the bias component,
// so w must have exactly one more component than x.
func Classify(w, x []float64) int {
	n := len(x)
	if len(w) != n+1 {
		panic(fmt.Sprintf("weight dims: want %d, found %d", n+1, len(w)))
	}
	a := floats.Dot(x, w[:n]) + w[n]
	if a >= 0 {
		return 1
	}
	return 0
}
