package perceptron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment(t *testing.T) {
	x := Slice{{-1, -1}, {2, 0.5}}
	a := Augment(x)
	assert.Equal(t, [][]float64{{-1, -1, 1}, {2, 0.5, 1}}, a)
	// The input is copied.
	a[0][0] = 7
	assert.Equal(t, float64(-1), x[0][0])
}

func TestEvaluateZeroActivation(t *testing.T) {
	neg := Augment(Slice{{-2, 0}})
	pos := Augment(Slice{{2, 0}})
	m := Evaluate(neg, pos, []float64{0, 0, 0})
	// Zero activation is a mistake only for the negative class.
	assert.Equal(t, []int{0}, m.Neg)
	assert.Equal(t, []int{}, m.Pos)
	assert.Equal(t, 1, m.Len())
}

func TestEvaluateNoMistakes(t *testing.T) {
	neg := Augment(Slice{{-1, -1}, {-2, 0}})
	pos := Augment(Slice{{1, 1}, {0, 3}})
	m := Evaluate(neg, pos, []float64{1, 1, 0})
	require.NotNil(t, m.Neg)
	require.NotNil(t, m.Pos)
	assert.Empty(t, m.Neg)
	assert.Empty(t, m.Pos)
	assert.Equal(t, 0, m.Len())
}

func TestEvaluateAllIndices(t *testing.T) {
	neg := Augment(Slice{{1, 0}, {-1, 0}, {3, 0}})
	pos := Augment(Slice{{-4, 0}, {1, 0}, {-1, 0}})
	m := Evaluate(neg, pos, []float64{1, 0, 0})
	assert.Equal(t, []int{0, 2}, m.Neg)
	assert.Equal(t, []int{0, 2}, m.Pos)
}

func TestEvaluateDeterministic(t *testing.T) {
	neg := Augment(Slice{{0.3, -1}, {2, 2}, {-1, 0.5}})
	pos := Augment(Slice{{1, 1}, {-3, 0}})
	w := []float64{0.2, -0.7, 0.1}
	assert.Equal(t, Evaluate(neg, pos, w), Evaluate(neg, pos, w))
	assert.Equal(t, []float64{0.2, -0.7, 0.1}, w)
}

func TestClassify(t *testing.T) {
	w := []float64{1, 1, -1}
	assert.Equal(t, 1, Classify(w, []float64{1, 1}))
	assert.Equal(t, 0, Classify(w, []float64{-1, -1}))
	// On the boundary.
	assert.Equal(t, 1, Classify(w, []float64{0.5, 0.5}))

	assert.Panics(t, func() { Classify(w, []float64{1, 1, 1}) })
	assert.Panics(t, func() { Classify(w, []float64{1}) })
}

func TestEvaluateNaNActivation(t *testing.T) {
	neg := Augment(Slice{{1, 1}})
	pos := Augment(Slice{{1, 1}})
	m := Evaluate(neg, pos, []float64{math.NaN(), 0, 0})
	assert.Equal(t, []int{0}, m.Neg)
	assert.Equal(t, []int{0}, m.Pos)
}
